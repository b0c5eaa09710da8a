// Package remote provides an HTTP(S) byte source for the config store,
// built on github.com/go-resty/resty.
//
// Fetch performs one blocking GET per call; the caller decides when and how
// often to load. Non-success statuses surface as errors wrapping ErrStatus
// so a failed fetch never merges partial data into a store.
//
// After a successful fetch the source reports a format hint derived from the
// response Content-Type header (or the URL extension), letting the store
// pick the matching deserializer.
//
// Usage:
//
//	src := remote.New("https://config.example.com/app.json",
//	    remote.WithTimeout(5*time.Second))
//	data, err := src.Fetch()
package remote

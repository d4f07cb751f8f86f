// Package cts retrieves verse text from a Canonical Text Services endpoint
// and extracts numbered lines from the TEI XML it returns.
//
// Example usage:
//
//	client := cts.NewClient(&cts.Config{CacheDir: "cache"})
//	lines, err := client.Fetch(ctx, cts.DefaultURN)
//	if err != nil {
//	    return err
//	}
//	for _, l := range lines {
//	    fmt.Println(l.ID, l.Text)
//	}
package cts

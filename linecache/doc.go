// Package linecache implements the deduplicated line-list store used by the
// file list cache node.
//
// A store location is a plain text file holding one unique, trimmed line per
// row. Each call to Store.Merge reads the file, folds in the caller's new
// lines, shuffles, truncates to a retention cap, writes the result back and
// returns a random sample of lines the caller did not just submit.
//
// # Usage
//
//	store := linecache.NewStore(linecache.WithLogger(logger))
//
//	res, err := store.Merge(ctx, linecache.Request{
//	    Dir:          "/data/prompts",
//	    Name:         "styles.txt",
//	    Candidates:   "oil painting\nwatercolor\n",
//	    SampleSize:   2,
//	    RetentionCap: 500,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.CombinedText())
//
// Blank Candidates turn the call into a read-only sample: nothing is written.
//
// # Files
//
// Next to "<name>" the store keeps:
//
//   - "<name>.bk": the previous version, replaced on every write
//   - "<name>.lock": the advisory lock file; it is never removed
//
// Writes go to a temporary file in the same directory which is renamed over
// "<name>", so readers see either the old or the new set, never a mix.
//
// # Concurrency
//
// The whole read-merge-write span runs under an exclusive file lock, so
// concurrent callers on one location serialize instead of losing updates.
// Acquisition is bounded by the caller's context and the store's lock timeout
// (ErrLockTimeout).
//
// # Randomness
//
// Each call builds its own generator. With a ShuffleKey the shuffle, the
// eviction and the sample are reproducible for the same stored set, input and
// cap; without one the generator is seeded from crypto/rand. No process-wide
// random state is touched.
package linecache

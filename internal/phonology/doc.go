// Package phonology turns Greek words into sound profiles for
// alliteration and assonance counts.
//
// A word is decomposed (NFKD), lowercased and stripped to the letters α-ω.
// A rough breathing becomes a leading "h". Diphthongs are then collapsed to
// single surrogate characters so they count as one sound, and a few letters
// are merged (ς/σ, θ/τ, χ/κ, φ/π). Tally counts the resulting characters,
// reporting diphthongs under their original spelling, and records the
// word's first sound under an "_" key.
//
// The default table and any table built by NewTable are read-only and can
// be shared across goroutines.
package phonology

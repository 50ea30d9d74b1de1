package patricia

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/openacid/testkeys"
)

var benchAlphabet = []rune("абвгдеёжзийклмнопрстуфхцчшщъыьэюяabcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randomWords(n int) []string {
	rnd := rand.New(rand.NewSource(1))
	words := make([]string, n)
	for i := range words {
		w := make([]rune, 1+rnd.Intn(15))
		for j := range w {
			w[j] = benchAlphabet[rnd.Intn(len(benchAlphabet))]
		}
		words[i] = string(w)
	}
	return words
}

// truncated picks count evenly spread keys of at least length bytes, cut
// to length.
func truncated(keys []string, length, count int) []string {
	long := make([]string, 0, len(keys))
	for _, k := range keys {
		if len(k) >= length {
			long = append(long, k)
		}
	}
	step := max(len(long)/count, 1)
	prefixes := make([]string, 0, count)
	for i := 0; i < len(long) && len(prefixes) < count; i += step {
		prefixes = append(prefixes, long[i][:length])
	}
	return prefixes
}

func buildTrie(keys []string) *Trie[int] {
	tr := New[int]()
	for i, k := range keys {
		tr.Set(k, i)
	}
	return tr
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)
		if len(keys) < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n+1; i++ {
			buildTrie(keys)
		}
	})
}

func BenchmarkGetHits(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = tr.Get(keys[i%len(keys)])
		}
	})
}

func BenchmarkGetMisses(b *testing.B) {
	misses := randomWords(100000)
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = tr.Get(misses[i%len(misses)])
		}
	})
}

func BenchmarkContainsMisses(b *testing.B) {
	misses := randomWords(100000)
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr.Contains(misses[i%len(misses)])
		}
	})
}

func BenchmarkKeysWithPrefix(b *testing.B) {
	for _, length := range []int{3, 5, 8} {
		b.Run(fmt.Sprintf("prefix%d", length), func(b *testing.B) {
			benchBigKeySet(b, func(b *testing.B, keys []string) {
				tr := buildTrie(keys)
				prefixes := truncated(keys, length, 1000)
				if len(prefixes) == 0 {
					b.Skip("no keys long enough")
				}
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					for range tr.KeysWithPrefix(prefixes[i%len(prefixes)]) {
					}
				}
			})
		})
	}
}

func BenchmarkLongestMatch(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tr := buildTrie(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tr.LongestMatch(keys[i%len(keys)] + " trailing text")
		}
	})
}

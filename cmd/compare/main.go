// Comparison tool for validating myersdiff output against another diff
// implementation over the same inputs.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ksnake/myersdiff"
	"github.com/ksnake/myersdiff/transcript"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	logger := log.New(os.Stdout, "", 0)

	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		logger.Printf("\n=== %s ===", tc.name)
		logger.Printf("A: %d elements, B: %d elements", len(tc.a), len(tc.b))

		start := time.Now()
		results, err := myersdiff.Compare[string](myersdiff.Slice[string](tc.a), myersdiff.Slice[string](tc.b))
		myersTime := time.Since(start)
		if err != nil {
			logger.Fatalf("myersdiff.Compare: %v", err)
		}

		dmp := godiff.New()
		start = time.Now()
		aText := strings.Join(tc.a, "\n")
		bText := strings.Join(tc.b, "\n")
		goDiffs := dmp.DiffMain(aText, bText, true)
		goDiffTime := time.Since(start)

		myersStats := analyzeMyers(results)
		goDiffStats := analyzeGoDiff(goDiffs)

		logger.Printf("\nmyersdiff: %v", myersTime)
		logger.Printf("  Snakes: %d (deleting: %d, inserting: %d, equal runs: %d)",
			myersStats.total, myersStats.delete, myersStats.insert, myersStats.equal)
		logger.Printf("  Change regions: %d", myersStats.changeRegions)

		logger.Printf("\ngo-diff: %v", goDiffTime)
		logger.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		logger.Printf("  Change regions: %d", goDiffStats.changeRegions)

		if len(tc.a) <= 20 {
			logger.Print("\nmyersdiff output:")
			var b strings.Builder
			if err := transcript.Write(&b, results, myersdiff.Slice[string](tc.a), myersdiff.Slice[string](tc.b), func(s string) string { return s }); err != nil {
				logger.Fatalf("transcript.Write: %v", err)
			}
			logger.Print(b.String())
		}
	}
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
}

func analyzeMyers(r *myersdiff.Results) diffStats {
	var s diffStats
	s.total = len(r.Snakes())
	inChange := false
	for _, snake := range r.Snakes() {
		if snake.DiagonalLength() > 0 {
			s.equal++
			inChange = false
		}
		if snake.Deleted() > 0 {
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
		if snake.Inserted() > 0 {
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = fmt.Sprintf("CHANGED LINE %d", i)
	}

	return result
}

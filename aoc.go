// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a puzzle runner, grid and graph helpers, and a generic
// best-first search that most of the path-finding days are built on.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Log is where the runner and solvers send diagnostics. Answers go to
// stdout.
var Log = logrus.New()

type sample struct {
	input string
	want  string
}

// sampleRx matches "want=<answer>", optionally followed by a blank line and
// the sample input. The input keeps its leading whitespace.
var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\n[ \t]*\n(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples reads the want= doc comments of every solver method in
// the Go files of src. A sample without input reuses the previous input in
// the same file.
func extractSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, MustGet(fs.ReadFile(src, name)), parser.ParseComments)
		if err != nil {
			Log.Fatalf("parsing %s to extract samples: %v", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return readInput(filepath.Join(flagInputs, fmt.Sprintf("%d/%d.input", p.year, p.day.day)))
}

var inputs sync.Map // filename -> []byte

func readInput(filename string) []byte {
	if v, ok := inputs.Load(filename); ok {
		return v.([]byte)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		Log.WithError(err).Fatalf("no puzzle input; save it as %s", filename)
	}
	inputs.Store(filename, b)
	return b
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		Log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// ByteGrid returns the input as a grid of bytes, one row per line.
func (p *Puzzle) ByteGrid() Grid[byte] {
	var g Grid[byte]
	p.ForLines(func(line string) {
		if line != "" {
			g = append(g, []byte(line))
		}
	})
	return g
}

func (p *Puzzle) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"day":    p.day.day,
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	})
}

func (p *Puzzle) Debug(v ...any) {
	p.log().Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log().Debugf(format, args...)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		Log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		Log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			Log.Fatalf("%s: got %T; want func() any", mn, v.Method(i).Interface())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
	flagProfile    string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", ".", "directory holding <year>/<day>.input files")
	flag.StringVar(&flagProfile, "profile", "", "write a cpu or mem profile")
}

var initFlags = sync.OnceFunc(flag.Parse)

// bind points the solver's embedded *Puzzle at a fresh Puzzle for day.
func bind(slvr any, year int, day day, samples map[string]sample) *Puzzle {
	p := &Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return p
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := bind(slvr, year, day, samples)
	fmt.Println("Running day", day.day)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			p.log().WithField("took", took).Debug("solved")
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
			}
		}
	}
}

// Run solves every registered day of year, or just the one picked with
// -day. src holds the solver sources, which carry the sample inputs.
func Run(year int, src fs.FS, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()
	if flagDebug {
		Log.SetLevel(logrus.DebugLevel)
	}
	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		Log.Fatalf("unknown -profile %q; want cpu or mem", flagProfile)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			Log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// SampleResult is the outcome of running one solver method on its sample.
type SampleResult struct {
	Name string
	Got  string
	Want string
}

// CheckSamples runs every solver method that has a sample in src and
// returns what each produced, in day and part order.
func CheckSamples(year int, src fs.FS, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, d := range dayNums {
		p := bind(slvr, year, days[d], samples)
		p.SampleMode = true
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			p.solver = ps
			out = append(out, SampleResult{
				Name: ps.Name,
				Got:  fmt.Sprint(ps.fn()),
				Want: s.want,
			})
		}
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		Log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/pullparty/pull"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting pull depth benchmark, please wait...")
	defer log.Print("Finished pull depth benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:           "simple component",
			width:          10,
			totalLayers:    5,
			staticFraction: 1,
			readFraction:   0.2,
			iterations:     600000,
		},
		{
			name:           "dynamic component",
			width:          10,
			totalLayers:    10,
			staticFraction: 0.75,
			readFraction:   0.2,
			iterations:     15000,
		},
		{
			name:           "large web app",
			width:          1000,
			totalLayers:    12,
			staticFraction: 0.95,
			readFraction:   1,
			iterations:     7000,
		},
		{
			name:           "wide dense",
			width:          1000,
			totalLayers:    5,
			staticFraction: 1,
			readFraction:   1,
			iterations:     3000,
		},
		{
			name:           "deep",
			width:          5,
			totalLayers:    500,
			staticFraction: 1,
			readFraction:   1,
			iterations:     500,
		},
		{
			name:           "very dynamic",
			width:          100,
			totalLayers:    15,
			staticFraction: 0.5,
			readFraction:   1,
			iterations:     2000,
		},
	}

	type results struct {
		sum      int
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "read%", "static%",
		"nTimes", "test", "time", "updateRate", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)
		counter := new(int64)
		graph := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
			counter:        counter,
			width:          cfg.width,
			totalLayers:    cfg.totalLayers,
			staticFraction: cfg.staticFraction,
		})

		runOnce := func() int {
			return benchmarkRunGraph(&benchmarkRunGraphConfig{
				graph:        graph,
				iterations:   cfg.iterations,
				readFraction: cfg.readFraction,
			})
		}
		// run once to warm up
		runOnce()

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			*counter = 0
			start := time.Now()
			sum := runOnce()
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.count = *counter
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers))
			if cfg.staticFraction < 1 {
				sb.WriteString(" dynamic")
			}
			if cfg.readFraction < 1 {
				sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.readFraction))
			}
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			"pull",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.readFraction),
			fmt.Sprint(cfg.staticFraction),
			humanize.Comma(cfg.iterations),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(updateRate)),
			makeTitle(),
		})
	}
	table.Render()
}

type benchmarkTestConfig struct {
	name           string  // friendly name for the test, should be unique
	width          int64   // width of dependency graph to construct
	totalLayers    int64   // depth of dependency graph to construct
	staticFraction float64 // fraction of nodes with fixed sources
	readFraction   float64 // fraction of leaves read in each iteration
	iterations     int64   // number of test iterations
}

type benchmarkGraph struct {
	rs      *pull.ReactiveSystem
	sources []*pull.WriteableSignal[int]
	layers  [][]pull.Source[int]
}

type benchmarkMakeGraphConfig struct {
	counter            *int64
	width, totalLayers int64
	staticFraction     float64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) *benchmarkGraph {
	rs := pull.CreateReactiveSystem(func(from pull.SignalAware, err error) {
		log.Panic(err)
	})
	sources := make([]*pull.WriteableSignal[int], cfg.width)
	for i := range sources {
		sources[i] = pull.Signal(rs, i)
	}

	random := rand.New(rand.NewSource(0))
	prevRow := make([]pull.Source[int], len(sources))
	for i, s := range sources {
		prevRow[i] = s
	}

	layers := make([][]pull.Source[int], cfg.totalLayers-1)
	for l := range layers {
		row := make([]pull.Source[int], len(prevRow))
		for myDex := range prevRow {
			a := prevRow[myDex]
			b := prevRow[(myDex+1)%len(prevRow)]

			if random.Float64() < cfg.staticFraction {
				// static node, always sums both sources
				row[myDex] = pull.Computed2(rs, a, b, func(av, bv int) int {
					*cfg.counter++
					return av + bv
				})
			} else {
				// dynamic node, parity of the first source picks a branch
				sum := pull.Computed2(rs, a, b, func(av, bv int) int {
					*cfg.counter++
					return av + bv
				})
				first := pull.Computed1(rs, a, func(av int) int {
					*cfg.counter++
					return av
				})
				row[myDex] = pull.Bind1(rs, a, func(av int) pull.Source[int] {
					*cfg.counter++
					if av&0x1 > 0 {
						return first
					}
					return sum
				})
			}
		}
		layers[l] = row
		prevRow = row
	}

	return &benchmarkGraph{rs: rs, sources: sources, layers: layers}
}

type benchmarkRunGraphConfig struct {
	graph        *benchmarkGraph
	iterations   int64
	readFraction float64
}

// Execute the graph by writing one of the sources and reading some or all
// of the leaves. Returns the sum of the values of the leaves it reads.
func benchmarkRunGraph(cfg *benchmarkRunGraphConfig) int {
	random := rand.New(rand.NewSource(0))
	leaves := cfg.graph.layers[len(cfg.graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	for i := 0; i < int(cfg.iterations); i++ {
		sourceDex := i % len(cfg.graph.sources)
		cfg.graph.sources[sourceDex].SetValue(i + sourceDex)

		for _, leaf := range readLeaves {
			leaf.Value()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Value()
	}
	return sum
}

func benchmarkRemoveElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/pullparty/pull"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPull(false)
	benchmarkPull(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func addOne(v int) int {
	return v + 1
}

func benchmarkPull(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Pull Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := pull.CreateReactiveSystem(func(from pull.SignalAware, err error) {
				log.Panic(err)
			})
			src := pull.Signal(rs, 1)
			leaves := make([]pull.Source[int], 0, w)
			for i := 0; i < w; i++ {
				var last pull.Source[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = pull.Computed1(rs, prev, addOne)
				}
				leaves = append(leaves, last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				for _, leaf := range leaves {
					leaf.Value()
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

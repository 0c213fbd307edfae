package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/pullparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
	checkKey      = "check"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-numbered constructors for the pull engine",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest constructor arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "pull/computedn.go",
			},
			&cli.BoolFlag{
				Name:  checkKey,
				Usage: "Fail if the file on disk is out of date instead of writing",
				Value: false,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for pull started")
	defer func() {
		log.Printf("Codegen for pull finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityCountKey))
	outPath := cmd.String(outputKey)

	contents := templates.ComputedNGen(maxArity)
	wantHash := xxhash.Sum64String(contents)

	if existing, err := os.ReadFile(outPath); err == nil {
		haveHash := xxhash.Sum64(existing)
		if haveHash == wantHash {
			log.Printf("%s up to date (%016x)", outPath, haveHash)
			return nil
		}
		if cmd.Bool(checkKey) {
			return fmt.Errorf("%s is out of date: have %016x want %016x", outPath, haveHash, wantHash)
		}
	} else if cmd.Bool(checkKey) {
		return fmt.Errorf("%s: %w", outPath, err)
	}

	if err := os.WriteFile(outPath, []byte(contents), 0644); err != nil {
		return err
	}
	log.Printf("wrote %s (%016x)", outPath, wantHash)
	return nil
}

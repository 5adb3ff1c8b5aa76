package nnqf

import (
	"context"

	"github.com/uyouii/nnqf/model"
	"github.com/uyouii/nnqf/neighbors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// LocateNeighbors finds the k nearest rows of x for every row of x, the row
// itself included. Row i of the returned table belongs to sample i.
func LocateNeighbors(ctx context.Context, x *mat.Dense, k int, p float64,
	algo neighbors.Algorithm, workers int) (model.NeighborTable, error) {
	rows, _ := x.Dims()
	if err := ValidateK(k, rows); err != nil {
		return nil, err
	}

	builder, err := neighbors.NewBuilder(algo)
	if err != nil {
		return nil, err
	}

	points := make([][]float64, rows)
	for i := range points {
		points[i] = x.RawRowView(i)
	}
	index, err := builder.Build(points, p)
	if err != nil {
		return nil, err
	}

	table := make(model.NeighborTable, rows)
	queryRange := func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := index.Query(points[i], k)
			if err != nil {
				return err
			}
			table[i] = res
		}
		return nil
	}

	if workers <= 1 || rows < 2 {
		if err := queryRange(ctx, 0, rows); err != nil {
			return nil, err
		}
		return table, nil
	}

	// every worker owns a disjoint row range of table
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	rowsPerWorker := (rows + workers - 1) / workers
	for start := 0; start < rows; start += rowsPerWorker {
		start, end := start, min(start+rowsPerWorker, rows)
		g.Go(func() error {
			return queryRange(gctx, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}

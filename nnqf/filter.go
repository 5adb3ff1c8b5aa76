package nnqf

import (
	"context"
	"fmt"

	"github.com/uyouii/nnqf/common"
	"github.com/uyouii/nnqf/model"
	"github.com/uyouii/nnqf/neighbors"
	"github.com/uyouii/nnqf/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Filter replaces every y[i] with the cfg.Quantile quantile of the outputs of
// the cfg.NumNeighbors nearest samples of x[i], itself included.
// x is N x S, y has N values. x and y are not modified.
func Filter(ctx context.Context, x mat.Matrix, y []float64, cfg Config) ([]float64, error) {
	series, err := filter(ctx, x, y, cfg, []float64{cfg.Quantile})
	if err != nil {
		return nil, err
	}
	return series[0].Values, nil
}

// FilterQuantiles runs the weighting and neighbor search once and returns one
// filtered output vector per probability in qs. cfg.Quantile is ignored.
func FilterQuantiles(ctx context.Context, x mat.Matrix, y []float64, cfg Config,
	qs []float64) ([]model.QuantileSeries, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: no quantiles requested", common.ErrorInvalidValue)
	}
	cfg.Quantile = qs[0]
	return filter(ctx, x, y, cfg, qs)
}

func filter(ctx context.Context, x mat.Matrix, y []float64, cfg Config,
	qs []float64) (res []model.QuantileSeries, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("nnqf filter recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			res, err = nil, fmt.Errorf("%w: %v", common.ErrorInvalidValue, r)
		}
	}()

	rows, cols := x.Dims()
	if len(y) != rows {
		err := fmt.Errorf("%w: %d outputs for %d samples", common.ErrorShapeMismatch, len(y), rows)
		logger.Error("invalid output vector", zap.Int("samples", rows), zap.Int("outputs", len(y)))
		return nil, err
	}
	if err := cfg.Validate(rows); err != nil {
		logger.Error("invalid filter config", zap.Error(err), zap.Any("config", cfg))
		return nil, err
	}
	for _, q := range qs {
		if err := ValidateQuantile(q); err != nil {
			logger.Error("invalid quantile", zap.Error(err), zap.Float64("q", q))
			return nil, err
		}
	}

	weighted, err := WeightFeatures(x, cfg.VarWeighting)
	if err != nil {
		logger.Error("WeightFeatures failed", zap.Error(err))
		return nil, err
	}
	logger.Debug("features weighted", zap.Bool("varWeighting", cfg.VarWeighting),
		zap.Int("samples", rows), zap.Int("features", cols))

	table, err := LocateNeighbors(ctx, weighted, cfg.NumNeighbors, cfg.MinkowskiOrder,
		cfg.Algorithm, cfg.workers())
	if err != nil {
		logger.Error("LocateNeighbors failed", zap.Error(err))
		return nil, err
	}
	logger.Debug("neighbors located", zap.String("table", table.DebugString()),
		zap.Stringer("algorithm", neighbors.Resolve(cfg.Algorithm, rows, cfg.MinkowskiOrder)))

	outputs, err := GatherNeighborOutputs(y, table)
	if err != nil {
		logger.Error("GatherNeighborOutputs failed", zap.Error(err))
		return nil, err
	}

	reduced, err := ReduceQuantiles(outputs, qs)
	if err != nil {
		logger.Error("ReduceQuantiles failed", zap.Error(err))
		return nil, err
	}

	res = make([]model.QuantileSeries, len(qs))
	for m, q := range qs {
		res[m] = model.QuantileSeries{
			Quantile: q,
			Values:   reduced[m],
		}
	}

	logger.Info("nnqf filter success", zap.Int("samples", rows),
		zap.Int("k", cfg.NumNeighbors), zap.Float64s("quantiles", qs))
	return res, nil
}

// Package pipeline runs the kernel ridge regression sine demo end to end:
// generate data, train, predict on the training data and on a test range,
// predict a single test point and render everything into one figure.
package pipeline

import (
	"time"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/model"
	"github.com/YuminosukeSato/krr/datasets"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/metrics"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"github.com/YuminosukeSato/krr/pkg/log"
	"github.com/YuminosukeSato/krr/plotting"
	"github.com/YuminosukeSato/krr/preprocessing"
	"github.com/YuminosukeSato/krr/sklearn/kernel_ridge"
	"gonum.org/v1/gonum/mat"
)

// Result holds the data and predictions of one run.
type Result struct {
	// X and Y are the 1×n training inputs and targets.
	X, Y *mat.Dense
	// TrainOutput is the model output on the training inputs.
	TrainOutput []float64

	// XE is the 1×m test range and YE the predictions on it.
	XE *mat.Dense
	YE []float64

	// MarkerX and MarkerY locate the single-point prediction.
	MarkerX, MarkerY float64

	TrainMSE float64
	TrainR2  float64

	// OutputPath and ModelPath are empty when nothing was written.
	OutputPath string
	ModelPath  string
}

// Run executes the demo. A nil logger falls back to log.GetLogger().
func Run(cfg Config, logger log.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.GetLogger()
	}
	logger = logger.With(log.ComponentKey, "pipeline")
	solver, _ := kernel_ridge.ParseSolver(cfg.Solver)
	start := time.Now()

	X, Y, err := datasets.SineData(datasets.SineConfig{
		Samples: cfg.Samples,
		Low:     cfg.Low,
		High:    cfg.High,
		Noise:   cfg.Noise,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "generating sine data")
	}
	logger.Debug("Generated training data",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, cfg.Samples,
		log.RandomSeedKey, cfg.Seed,
	)

	feat, err := features.NewDenseFromColumns(X)
	if err != nil {
		return nil, err
	}
	var scaler *preprocessing.StandardScaler
	if cfg.Standardize {
		scaler = preprocessing.NewStandardScalerDefault()
		scaled, err := scaler.FitTransform(feat.Matrix())
		if err != nil {
			return nil, errors.Wrap(err, "standardizing inputs")
		}
		if feat, err = features.NewDense(scaled); err != nil {
			return nil, err
		}
		logger.Debug("Standardized inputs", log.PhaseKey, log.PhasePreprocessing, "scaler", scaler.String())
	}
	lab, err := features.NewLabelsFromMatrix(Y)
	if err != nil {
		return nil, err
	}

	gk, err := kernel.NewGaussian(cfg.Width)
	if err != nil {
		return nil, err
	}
	if err := gk.Init(feat, feat); err != nil {
		return nil, err
	}

	krr := kernel_ridge.NewKernelRidgeRegression(gk, lab,
		kernel_ridge.WithTau(cfg.Tau),
		kernel_ridge.WithSolver(solver),
		kernel_ridge.WithLogger(logger),
	)
	if err := krr.Train(); err != nil {
		return nil, errors.Wrap(err, "training kernel ridge regression")
	}

	trainOut, err := krr.Apply()
	if err != nil {
		return nil, errors.Wrap(err, "applying to training data")
	}
	res := &Result{X: X, Y: Y, TrainOutput: trainOut.Values()}
	if res.TrainMSE, err = metrics.MSE(lab.Vec(), trainOut.Vec()); err != nil {
		return nil, err
	}
	if res.TrainR2, err = metrics.R2Score(lab.Vec(), trainOut.Vec()); err != nil {
		return nil, err
	}
	logger.Info("Training output computed",
		log.OperationKey, log.OperationScore,
		log.LossKey, res.TrainMSE,
		log.R2ScoreKey, res.TrainR2,
	)

	iso := datasets.IsolineConfig{
		Samples: cfg.TestSamples,
		Low:     cfg.Low,
		High:    cfg.High,
		Seed:    cfg.TestSeed,
	}
	if scaler != nil {
		iso.Scaler = scaler
	}
	if res.XE, res.YE, err = datasets.ComputeOutputIsolinesSine(krr, gk, feat, iso); err != nil {
		return nil, errors.Wrap(err, "predicting test range")
	}
	res.MarkerX = res.XE.At(0, cfg.MarkerIndex)
	if res.MarkerY, err = krr.ApplyOne(cfg.MarkerIndex); err != nil {
		return nil, err
	}
	logger.Info("Test output computed",
		log.OperationKey, log.OperationApply,
		log.PredsKey, len(res.YE),
		"marker.index", cfg.MarkerIndex,
		"marker.y", res.MarkerY,
	)

	if cfg.ModelOutput != "" {
		mw, err := krr.ExportWeights()
		if err != nil {
			return nil, err
		}
		if err := model.SaveWeights(mw, cfg.ModelOutput); err != nil {
			return nil, errors.Wrap(err, "saving model")
		}
		res.ModelPath = cfg.ModelOutput
		logger.Info("Model saved", log.OutputPathKey, cfg.ModelOutput)
	}

	if cfg.Output != "" {
		err := errors.SafeExecute("pipeline.render", func() error {
			return render(cfg, res)
		})
		if err != nil {
			logger.Error("Rendering failed", err, log.OutputPathKey, cfg.Output)
			return nil, err
		}
		res.OutputPath = cfg.Output
		logger.Info("Figure saved",
			log.OperationKey, log.OperationRender,
			log.OutputPathKey, cfg.Output,
		)
	}

	logger.Info("Pipeline completed", log.DurationMsKey, time.Since(start).Milliseconds())
	return res, nil
}

func render(cfg Config, res *Result) error {
	fig, err := Figure(cfg.Title, res)
	if err != nil {
		return err
	}
	return fig.Save(cfg.Output, cfg.FigureWidth, cfg.FigureHeight)
}

// Figure draws the training data, both outputs and the single-point marker.
func Figure(title string, res *Result) (*plotting.Figure, error) {
	fig := plotting.NewFigure(title)
	fig.SetAxisLabels("x", "y")

	xs := mat.Row(nil, 0, res.X)
	if err := fig.Scatter("train data", xs, mat.Row(nil, 0, res.Y), plotting.TabRed); err != nil {
		return nil, err
	}
	if err := fig.Line("train output", xs, res.TrainOutput, plotting.TabBlue); err != nil {
		return nil, err
	}
	if err := fig.Line("test output", mat.Row(nil, 0, res.XE), res.YE, plotting.TabOrange); err != nil {
		return nil, err
	}
	if err := fig.Marker("", res.MarkerX, res.MarkerY, plotting.TabGreen); err != nil {
		return nil, err
	}
	return fig, nil
}

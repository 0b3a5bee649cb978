package sorter

import (
	"context"

	"github.com/amp-labs/amp-sort/envutil"
)

// AlgorithmEnvVar selects the strategy returned by FromEnv.
const AlgorithmEnvVar = "SORT_ALGORITHM"

// ConfiguredAlgorithm reads SORT_ALGORITHM, defaulting to DefaultAlgorithm.
// An unknown name is an error wrapping both envutil.ErrBadEnvVar and
// errors.ErrInvalidArgument.
func ConfiguredAlgorithm(ctx context.Context) (Algorithm, error) {
	return envutil.Map(
		envutil.String(ctx, AlgorithmEnvVar, envutil.Default(string(DefaultAlgorithm))),
		ParseAlgorithm,
	).Value()
}

// FromEnv returns the strategy named by SORT_ALGORITHM.
func FromEnv[T any](ctx context.Context) (Sorter[T], error) { //nolint:ireturn
	alg, err := ConfiguredAlgorithm(ctx)
	if err != nil {
		return nil, err
	}

	return New[T](alg)
}

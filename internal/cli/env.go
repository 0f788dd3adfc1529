package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/hostenv"
	"github.com/matzehuels/wheeltag/pkg/tags"
)

// envFlags holds the shared flags for commands that need a target
// environment. Exactly one source is used: an explicit TOML descriptor
// (--env-file) wins over interpreter interrogation (--python).
type envFlags struct {
	envFile string // path to a TOML environment descriptor
	python  string // interpreter executable to interrogate
}

// register adds the environment flags to cmd.
func (f *envFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "TOML environment descriptor (instead of interrogating an interpreter)")
	cmd.Flags().StringVar(&f.python, "python", "python3", "Python interpreter to interrogate")
}

// resolve builds the target environment from the flags.
func (f *envFlags) resolve(ctx context.Context) (*tags.Environment, error) {
	if f.envFile != "" {
		// Descriptor files describe arbitrary machines, so the local
		// glibc is never probed; manylinux tags come from the file's
		// glibc key or from interrogating an interpreter in place.
		return hostenv.Load(f.envFile)
	}
	return hostenv.Interrogate(ctx, f.python)
}

// resolveTags builds the environment and computes its tag sequence.
func (f *envFlags) resolveTags(ctx context.Context) (*tags.Environment, []tags.Tag, error) {
	env, err := f.resolve(ctx)
	if err != nil {
		return nil, nil, err
	}
	seq, err := tags.SysTags(*env)
	if err != nil {
		return nil, nil, err
	}
	return env, seq, nil
}

// Package inline runs shuffles without any interaction and prints the
// picked videos, as plain lines or as a JSON document.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/session"
)

func Run(ctx context.Context, options *Options) error {
	if err := options.validate(); err != nil {
		return err
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}

	engine := options.Engine

	for _, ev := range options.setup() {
		if _, err := engine.Handle(ctx, ev); err != nil {
			return err
		}
	}

	results := make([]*Result, 0, options.Cycles)
	for i := 0; i < options.Cycles; i++ {
		outcome, err := engine.Handle(ctx, session.Shuffle{AvoidCurrentGenre: options.Courageous && i > 0})
		if err != nil {
			return fmt.Errorf("shuffle %d: %w", i+1, err)
		}

		result := newResult(i, outcome)
		if result.Empty {
			log.Infof("shuffle %d found nothing for %q", i+1, result.Query)
		}
		results = append(results, result)
	}

	if options.Json {
		state := engine.Snapshot()
		return writeJson(options.Out, &Output{
			Source:   engine.SourceName(),
			Mode:     state.Config.Mode.String(),
			Keyword:  state.Config.FixedTerm.OrEmpty(),
			Degraded: options.Degraded,
			Results:  results,
		})
	}

	for _, result := range results {
		if result.Video == nil {
			continue
		}

		if _, err := fmt.Fprintf(options.Out, "%s\t%s\n", result.Video.URL, result.Video.Title); err != nil {
			return err
		}
	}

	return nil
}

package shared

import "context"

// CommitHooks collects post-commit callbacks for one transaction attempt.
type CommitHooks struct {
	fns []func(ctx context.Context)
}

func (h *CommitHooks) Add(fn func(ctx context.Context)) {
	h.fns = append(h.fns, fn)
}

func (h *CommitHooks) Run(ctx context.Context) {
	for _, fn := range h.fns {
		fn(ctx)
	}
	h.fns = nil
}

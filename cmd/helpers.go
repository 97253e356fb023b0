package cmd

import (
	"fmt"
	"strings"

	"noteremote/internal/config"
	"noteremote/internal/model"
	"noteremote/internal/platform"
	"noteremote/internal/resolve"
	"noteremote/internal/scrolling"
)

// app bundles the per-invocation wiring: the platform provider, the resolver
// configured from the loaded config, the scrolling session, and the signature
// store. CLI commands build one app per run; the MCP server builds one and
// reuses it across tool calls.
type app struct {
	provider *platform.Provider
	resolver *resolve.Resolver
	session  *scrolling.Session
	store    *config.Store
}

func newApp() (*app, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	resolver := resolve.NewResolver(provider, cfg.ResolveTarget(), log)
	resolver.Weights = cfg.ResolveWeights()
	if cfg.Match.MinScore > 0 {
		resolver.MinScore = cfg.Match.MinScore
	}

	session := scrolling.NewSession(provider, log)
	session.Engine.Tolerance = cfg.Scroll.CenterTolerance
	session.Engine.Repeats = cfg.Scroll.MaxRepeats
	session.Engine.Iterations = cfg.Scroll.MaxIterations
	session.Engine.SettleTimeout = cfg.SettleTimeout()
	session.Engine.Poll = cfg.PollInterval()

	return &app{
		provider: provider,
		resolver: resolver,
		session:  session,
		store:    config.NewStore(cfg.Paths.SignatureFile),
	}, nil
}

// resolveConnected loads the stored signature and re-acquires the live
// window for it.
func (a *app) resolveConnected() (platform.Window, model.WindowSignature, error) {
	sig, ok, err := a.store.Load()
	if err != nil {
		return nil, model.WindowSignature{}, err
	}
	if !ok {
		return nil, model.WindowSignature{}, fmt.Errorf("not connected: run 'noteremote connect' first")
	}

	w, err := a.resolver.Resolve(sig)
	if err != nil {
		return nil, sig, fmt.Errorf("cannot find the connected window: %w", err)
	}
	return w, sig, nil
}

// refreshSignature re-captures the signature after a successful resolve so
// the next run's fast path uses the current handle. Best-effort.
func (a *app) refreshSignature(w platform.Window, prev model.WindowSignature) {
	sig := resolve.BuildSignature(w, a.provider.Inspector)
	if sig.IsZero() || sig == prev {
		return
	}
	if err := a.store.Save(sig); err != nil {
		log.Warn().Err(err).Msg("could not refresh the stored signature")
	}
}

// pickWindow selects one window from the candidate list by optional handle
// or title-substring filter. Zero or multiple survivors are an error; the
// multiple-match error lists the survivors so the caller can narrow.
func pickWindow(candidates []model.WindowInfo, handle uint64, title string) (model.WindowInfo, error) {
	var matches []model.WindowInfo
	titleLower := strings.ToLower(title)
	for _, c := range candidates {
		if handle != 0 && uint64(c.Handle) != handle {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(c.Title), titleLower) {
			continue
		}
		matches = append(matches, c)
	}

	if len(matches) == 0 {
		return model.WindowInfo{}, fmt.Errorf("no OneNote window matches the filter")
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple windows match; use --handle or a longer --title to narrow:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "  handle=%#x pid=%d class=%q title=%q\n", uintptr(m.Handle), m.ProcessID, m.ClassName, m.Title)
	}
	return model.WindowInfo{}, fmt.Errorf("%s", b.String())
}

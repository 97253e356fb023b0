package scrolling

import (
	"errors"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"noteremote/internal/platform"
)

// ErrNoSelection is returned when every selection-query strategy comes back
// empty.
var ErrNoSelection = errors.New("no selected item in container")

// itemControlTypes are the control types scanned when looking for rows, in
// order. The modern app host surfaces the section list as TreeItems, some
// hosts as ListItems.
var itemControlTypes = []string{"TreeItem", "ListItem"}

// SelectedItem returns the container's currently selected row. Selection
// reporting is flaky across app hosts, so four strategies are tried in
// order, each only when the previous yielded nothing: the dedicated
// selection query, the selection-pattern interface, a linear scan of the
// immediate children, and finally a scan of all TreeItem descendants.
func (e *Engine) SelectedItem(c platform.Container) (platform.Element, error) {
	if sel, err := c.Selection(); err == nil && len(sel) > 0 {
		return sel[0], nil
	}
	if sel, err := c.SelectionPattern(); err == nil && len(sel) > 0 {
		return sel[0], nil
	}

	if children, err := c.Children(); err == nil {
		for _, item := range children {
			if selected, err := item.IsSelected(); err == nil && selected {
				return item, nil
			}
		}
	}

	if items, err := c.Items("TreeItem"); err == nil {
		for _, item := range items {
			if selected, err := item.IsSelected(); err == nil && selected {
				return item, nil
			}
		}
	}

	return nil, ErrNoSelection
}

// SelectByText finds a row whose normalized display text equals text and
// selects it, trying Select first and Invoke when selection is refused.
// TreeItems are scanned before ListItems. Returns the matched row's display
// name.
func (e *Engine) SelectByText(c platform.Container, text string) (string, bool) {
	target := normalizeText(text)
	if target == "" {
		return "", false
	}

	for _, controlType := range itemControlTypes {
		items, err := c.Items(controlType)
		if err != nil {
			continue
		}
		for _, item := range items {
			name := item.Name()
			if normalizeText(name) != target {
				continue
			}
			if activate(item) {
				return name, true
			}
		}
	}
	return "", false
}

// SelectByTextFuzzy is SelectByText with fuzzy ranking: when no row matches
// exactly, the best-ranked fuzzy match (normalized, fold-insensitive) is
// selected instead.
func (e *Engine) SelectByTextFuzzy(c platform.Container, text string) (string, bool) {
	if name, ok := e.SelectByText(c, text); ok {
		return name, ok
	}

	target := normalizeText(text)
	if target == "" {
		return "", false
	}

	var (
		best     platform.Element
		bestName string
		bestRank = -1
	)
	for _, controlType := range itemControlTypes {
		items, err := c.Items(controlType)
		if err != nil {
			continue
		}
		for _, item := range items {
			name := item.Name()
			rank := fuzzy.RankMatchNormalizedFold(target, normalizeText(name))
			if rank < 0 {
				continue
			}
			if bestRank < 0 || rank < bestRank {
				best, bestName, bestRank = item, name, rank
			}
		}
	}

	if best != nil && activate(best) {
		e.Log.Debug().Str("item", bestName).Int("rank", bestRank).Msg("fuzzy-matched row")
		return bestName, true
	}
	return "", false
}

// activate selects the element, falling back to Invoke when Select is
// unsupported or refused.
func activate(el platform.Element) bool {
	if err := el.Select(); err == nil {
		return true
	} else if platform.IsVanished(err) {
		return false
	}
	return el.Invoke() == nil
}

// normalizeText collapses runs of whitespace to single spaces and lowers
// the result, so row text compares stably across hosts that pad or re-space
// their labels.
func normalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

package tui

import (
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const statsBarWidth = 24

// renderStats is the footer line for items. The empty case returns before
// any counting happens.
func renderStats(items model.List) string {
	t := ui.Current()
	st, ok := model.Summarize(items)
	if !ok {
		return t.Muted.Italic(true).Render(model.EmptyMessage)
	}
	style := t.Pending
	if st.Complete() {
		style = t.Success
	}
	return style.Italic(true).Render(st.Message()) + "\n" +
		style.Render(ui.ProgressBar(st.Packed, st.Total, statsBarWidth))
}

package chart

// Holder owns the single live chart of a page. Replace installs the new
// chart and destroys the previous one on the same call, so at most one
// chart is ever attached.
type Holder struct {
	current  *Chart
	attached int
}

// Replace installs c and destroys the chart it replaces.
func (h *Holder) Replace(c *Chart) {
	old := h.current
	h.current = c
	if c != nil {
		h.attached++
	}
	if old != nil {
		old.Destroy()
		h.attached--
	}
}

// Current returns the live chart, or nil before the first refresh.
func (h *Holder) Current() *Chart {
	return h.current
}

// Attached returns the number of live charts (0 or 1).
func (h *Holder) Attached() int {
	return h.attached
}

// Release destroys the live chart, if any.
func (h *Holder) Release() {
	h.Replace(nil)
}

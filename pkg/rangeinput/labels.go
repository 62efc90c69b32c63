package rangeinput

// LabelKind identifies which label is being formatted.
type LabelKind int

const (
	// LabelMinBound is the label under the left end of the track.
	LabelMinBound LabelKind = iota
	// LabelMaxBound is the label under the right end of the track.
	LabelMaxBound
	// LabelValue is the label above a handle.
	LabelValue
)

func (k LabelKind) String() string {
	switch k {
	case LabelMinBound:
		return "min"
	case LabelMaxBound:
		return "max"
	default:
		return "value"
	}
}

// LabelFormatter formats a label value.
type LabelFormatter func(value float64, kind LabelKind) string

// Label is a positioned, formatted label.
type Label struct {
	Kind LabelKind
	// Handle is set for value labels.
	Handle Handle
	Value  float64
	// Percentage is the label position as a fraction of the track width.
	Percentage float64
	Text       string
}

// FormatLabel formats v with the configured formatter and suffix.
func (r *InputRange) FormatLabel(v float64, kind LabelKind) string {
	text := formatNumber(v)
	if r.cfg.FormatLabel != nil {
		text = r.cfg.FormatLabel(v, kind)
	}
	return text + r.cfg.LabelSuffix
}

// Labels returns the bound labels followed by one value label per handle.
func (r *InputRange) Labels() []Label {
	labels := []Label{
		{Kind: LabelMinBound, Value: r.bound.Min, Percentage: 0, Text: r.FormatLabel(r.bound.Min, LabelMinBound)},
		{Kind: LabelMaxBound, Value: r.bound.Max, Percentage: 1, Text: r.FormatLabel(r.bound.Max, LabelMaxBound)},
	}
	for _, h := range r.Handles() {
		v := r.value.Get(h)
		labels = append(labels, Label{
			Kind:       LabelValue,
			Handle:     h,
			Value:      v,
			Percentage: ValueToPercentage(v, r.bound),
			Text:       r.FormatLabel(v, LabelValue),
		})
	}
	return labels
}

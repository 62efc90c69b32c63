package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/inputrange/pkg/rangeinput"
)

// parseValue reads "v" for single sliders and "min max" for dual ones.
// A comma may separate the two numbers.
func parseValue(input string, multi bool) (rangeinput.Value, error) {
	fields := strings.Fields(strings.ReplaceAll(input, ",", " "))
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return rangeinput.Value{}, fmt.Errorf("parse %q: not a number", f)
		}
		nums = append(nums, n)
	}
	switch {
	case !multi && len(nums) == 1:
		return rangeinput.Single(nums[0]), nil
	case multi && len(nums) == 2:
		return rangeinput.Pair(nums[0], nums[1]), nil
	case multi:
		return rangeinput.Value{}, fmt.Errorf("want two numbers, got %d", len(nums))
	default:
		return rangeinput.Value{}, fmt.Errorf("want one number, got %d", len(nums))
	}
}

package zone

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// TransitionRule is a packed 12-bit symbolic DST transition rule:
//
//	+-------+-----------+--------------+--------------+-----------+
//	| month | dayofweek | end-of-month | second occur | hour code |
//	| 4 b   | 3 b       | 1 b          | 1 b          | 3 b       |
//	+-------+-----------+--------------+--------------+-----------+
//
// The rule names the month, the target weekday (Monday=0), the scan
// direction (forward from day 1, or backward from the last day when
// the end-of-month bit is set), which occurrence of the weekday is the
// transition day (first or second in scan order), and the civil hour
// of the switch. The hour code indexes {20, 21, 22, 23, 0, 1, 2, 3};
// real-world transitions happen only in that window.
type TransitionRule uint16

const (
	ruleMonthShift = 8
	ruleDowShift   = 5
	ruleEndBit     = 1 << 4
	ruleSecondBit  = 1 << 3

	ruleMonthMask = 0xf
	ruleDowMask   = 0x7
	ruleHourMask  = 0x7

	ruleMask = 0xfff
)

var ruleHours = [8]uint8{20, 21, 22, 23, 0, 1, 2, 3}

var (
	ErrRuleMonth = fmt.Errorf("transition rule month must be in [1, 12]")
	ErrRuleDow   = fmt.Errorf("transition rule weekday must be in [0, 6]")
	ErrRuleHour  = fmt.Errorf("transition rule hour must be one of 20..23, 0..3")
)

// NewTransitionRule packs a transition rule. All violations are
// reported together.
func NewTransitionRule(month, dow uint8, fromEnd, second bool, hour uint8) (TransitionRule, error) {
	var errs error
	if month < 1 || month > 12 {
		errs = multierror.Append(errs, ErrRuleMonth)
	}
	if dow > 6 {
		errs = multierror.Append(errs, ErrRuleDow)
	}
	code := -1
	for i, h := range ruleHours {
		if h == hour {
			code = i
			break
		}
	}
	if code < 0 {
		errs = multierror.Append(errs, ErrRuleHour)
	}
	if errs != nil {
		return 0, errs
	}

	r := TransitionRule(month)<<ruleMonthShift |
		TransitionRule(dow)<<ruleDowShift |
		TransitionRule(code)
	if fromEnd {
		r |= ruleEndBit
	}
	if second {
		r |= ruleSecondBit
	}
	return r, nil
}

// MustTransitionRule is NewTransitionRule for statically known
// arguments; it panics on a validation error.
func MustTransitionRule(month, dow uint8, fromEnd, second bool, hour uint8) TransitionRule {
	r, err := NewTransitionRule(month, dow, fromEnd, second, hour)
	if err != nil {
		panic(err)
	}
	return r
}

// Month returns the rule's month, 1..12.
func (r TransitionRule) Month() uint8 { return uint8(r>>ruleMonthShift) & ruleMonthMask }

// DayOfWeek returns the rule's target weekday, Monday=0.
func (r TransitionRule) DayOfWeek() uint8 { return uint8(r>>ruleDowShift) & ruleDowMask }

// FromMonthEnd reports whether occurrences are counted backward from
// the last day of the month.
func (r TransitionRule) FromMonthEnd() bool { return r&ruleEndBit != 0 }

// Second reports whether the transition day is the second occurrence
// of the weekday in scan order rather than the first.
func (r TransitionRule) Second() bool { return r&ruleSecondBit != 0 }

// Hour returns the civil hour of the transition.
func (r TransitionRule) Hour() uint8 { return ruleHours[r&ruleHourMask] }

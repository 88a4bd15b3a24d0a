package check

import (
	"strings"

	"github.com/tsatke/sentinel/internal/base"
)

// ParseCheckOutput splits plugin output into the text and the performance
// data part. Every line may carry performance data after a '|', as long as
// there is a '=' after the '|'. Text lines are joined with newlines,
// performance data with spaces.
func ParseCheckOutput(output base.String) (text, perfdata base.String) {
	var textBuf, perfBuf strings.Builder

	for _, line := range output.Split("\r\n") {
		if textBuf.Len() > 0 {
			textBuf.WriteByte('\n')
		}

		delim := line.FindFirstOf("|", 0)
		if delim != base.NPos && line.FindFirstOf("=", delim) != base.NPos {
			textBuf.WriteString(line.SubStr(0, delim).String())

			if perfBuf.Len() > 0 {
				perfBuf.WriteByte(' ')
			}
			perfBuf.WriteString(line.SubStr(delim+1, base.NPos).String())
		} else {
			textBuf.WriteString(line.String())
		}
	}

	return base.New(textBuf.String()), base.New(perfBuf.String()).Trim()
}

// SplitPerfdata splits performance data into its label=value tokens.
// Labels may be quoted with single quotes to contain spaces. A label of the
// form "check::label" sets the prefix for the following unprefixed labels.
//
//	SplitPerfdata("'a b'=1 c=2") // ["'a b'=1", "c=2"]
func SplitPerfdata(perfdata base.String) []base.String {
	var result []base.String
	var multiPrefix base.String

	begin := 0
	for {
		eqp := perfdata.FindFirstOf("=", begin)
		if eqp == base.NPos {
			break
		}

		label := perfdata.SubStr(begin, eqp-begin).Trim()
		if label.Len() > 2 && label.At(0) == '\'' && label.At(label.Len()-1) == '\'' {
			label = label.SubStr(1, label.Len()-2)
		}

		multiIndex := label.RFind("::", base.NPos)
		if multiIndex != base.NPos {
			multiPrefix = ""
		}

		spq := perfdata.FindFirstOf(" ", eqp)
		if spq == base.NPos {
			spq = perfdata.Len()
		}

		val := perfdata.SubStr(eqp+1, spq-eqp-1)

		if !multiPrefix.IsEmpty() {
			label = multiPrefix + "::" + label
		}

		var pdv base.String
		if label.FindFirstOf(" ", 0) != base.NPos {
			pdv = "'" + label + "'=" + val
		} else {
			pdv = label + "=" + val
		}
		result = append(result, pdv)

		if multiIndex != base.NPos {
			multiPrefix = label.SubStr(0, multiIndex)
		}

		if spq >= perfdata.Len() {
			break
		}
		begin = spq + 1
	}

	return result
}

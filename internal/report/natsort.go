// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"sort"
	"strconv"
)

// naturalSort orders strings with embedded numbers the way a catalog
// reads: "MTH 3" before "MTH 15" before "MTH 101". Digit runs compare as
// integers, everything else byte-wise.
func naturalSort(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return naturalLess(items[i], items[j])
	})
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aTok, aNum, aRest := nextToken(a)
		bTok, bNum, bRest := nextToken(b)

		if aNum && bNum {
			ai, _ := strconv.Atoi(aTok)
			bi, _ := strconv.Atoi(bTok)
			if ai != bi {
				return ai < bi
			}
		} else if aTok != bTok {
			return aTok < bTok
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

// nextToken splits off the leading run of digits or non-digits.
func nextToken(s string) (tok string, isNum bool, rest string) {
	isNum = s[0] >= '0' && s[0] <= '9'
	end := 1
	for end < len(s) && (s[end] >= '0' && s[end] <= '9') == isNum {
		end++
	}
	return s[:end], isNum, s[end:]
}

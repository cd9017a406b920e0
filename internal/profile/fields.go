package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Alias tables list canonical keys in priority order. The first non-empty value wins.
var (
	idKeys             = []string{"id", "userid", "uid"}
	fullNameKeys       = []string{"fullname", "name"}
	emailKeys          = []string{"email", "emailaddress"}
	phoneKeys          = []string{"phone", "phonenumber", "mobile"}
	districtKeys       = []string{"district", "location"}
	educationLevelKeys = []string{"educationlevel", "highesteducation", "education"}
	careerGoalKeys     = []string{"careergoal", "goal"}
	statusKeys         = []string{"status", "currentstatus"}
	experienceKeys     = []string{"experienceyears", "yearsofexperience", "experience"}
	skillsKeys         = []string{"skills"}
	interestsKeys      = []string{"interests"}
	educationKeys      = []string{"educationdetails", "education"}
	resumeKeys         = []string{"resumedata", "resume"}
	completedKeys      = []string{"completedtasks"}
	profileDoneKeys    = []string{"profilecompleted"}

	institutionKeys      = []string{"institution", "school", "university"}
	fieldKeys            = []string{"field", "fieldofstudy", "major"}
	gradYearKeys         = []string{"gradyear", "graduationyear"}
	eduDescriptionKeys   = []string{"description"}
	topProjectKeys       = []string{"topproject", "project"}
	recentRoleKeys       = []string{"recentrole", "role"}
	keyAchievementKeys   = []string{"keyachievement", "achievement"}
	impactMetricKeys     = []string{"impactmetric", "metric"}
	responsibilitiesKeys = []string{"responsibilities"}
)

// canonicalKey folds case and separators so "phone_number", "phoneNumber" and
// "Phone-Number" all land on "phonenumber".
func canonicalKey(key string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(key) {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// record is a raw map re-keyed by canonical key.
type record map[string]any

// index re-keys raw. When two raw keys fold to the same canonical key, a non-empty
// value beats an empty one and otherwise the lexicographically smaller raw key wins,
// so the result never depends on map iteration order.
func index(raw map[string]any) record {
	rawKeys := make([]string, 0, len(raw))
	for k := range raw {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	rec := make(record, len(raw))
	for _, k := range rawKeys {
		ck := canonicalKey(k)
		if existing, ok := rec[ck]; ok && !isEmpty(existing) {
			continue
		}
		rec[ck] = raw[k]
	}
	return rec
}

// first returns the first non-empty value among keys.
func (r record) first(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && !isEmpty(v) {
			return v, true
		}
	}
	return nil, false
}

// str returns the first non-empty scalar among keys, whitespace-collapsed.
func (r record) str(keys []string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || isEmpty(v) {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		return collapse(toString(v))
	}
	return ""
}

// sub returns the first nested object among keys.
func (r record) sub(keys []string) record {
	for _, k := range keys {
		if m, ok := r[k].(map[string]any); ok && len(m) > 0 {
			return index(m)
		}
	}
	return nil
}

// rawSub returns the first nested object among keys without re-keying it.
func (r record) rawSub(keys []string) map[string]any {
	for _, k := range keys {
		if m, ok := r[k].(map[string]any); ok && len(m) > 0 {
			return m
		}
	}
	return nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

// toList accepts a JSON array or a comma/newline separated string.
func toList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, toString(item))
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case string:
		return strings.FieldsFunc(t, func(r rune) bool { return r == ',' || r == '\n' || r == ';' })
	default:
		return nil
	}
}

// collapse trims and folds internal whitespace runs to a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

//go:build ignore

package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const BasePath = "cldr/"
const BaseURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/"

// LocaleNames must be ordered parents-first: children start from a copy of
// their parent's data.
var LocaleNames = []string{
	"root",
	"en",
	"en_GB",
	"fr",
	"es",
	"ar",
	"ja",
}

type CalendarFormat struct {
	Full   string
	Long   string
	Medium string
	Short  string
}

type CalendarSymbol struct {
	Wide        string
	Abbreviated string
	Narrow      string
}

type EraSymbol struct {
	Wide        string
	Abbreviated string
	Narrow      string
	Variant     string
}

type TimezoneName struct {
	Short string
	Long  string
}

type DayPeriodRule struct {
	From int
	To   int
}

type LocaleData struct {
	NumberSystem     string
	DateFormat       CalendarFormat
	TimeFormat       CalendarFormat
	DatetimeFormat   CalendarFormat
	AvailableFormats map[string]string
	MonthSymbol      [12]CalendarSymbol
	DaySymbol        [7]CalendarSymbol
	DayPeriodSymbol  map[string]CalendarSymbol
	DayPeriodVariant map[string]string
	DayPeriodRules   map[string]DayPeriodRule
	EraSymbol        [2]EraSymbol
	TimezoneName     map[string]TimezoneName
}

var dayMap = map[string]int{
	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

func main() {
	dayPeriodRules := map[string]map[string]DayPeriodRule{}
	err := readXMLLeafs("supplemental/dayPeriods.xml", func(tags []string, attrs []map[string]string, content string) {
		if isTag(tags, attrs, "supplementalData/dayPeriodRuleSet[!type]/dayPeriodRules[locales]/dayPeriodRule[type]") {
			rule := DayPeriodRule{From: -1, To: -1}
			attr := attrs[len(attrs)-1]
			if at, ok := attr["at"]; ok {
				rule.From = parseDayMinute(at)
			} else {
				rule.From = parseDayMinute(attr["from"])
				rule.To = parseDayMinute(attr["before"])
			}
			for _, loc := range strings.Fields(attrs[len(attrs)-2]["locales"]) {
				if dayPeriodRules[loc] == nil {
					dayPeriodRules[loc] = map[string]DayPeriodRule{}
				}
				dayPeriodRules[loc][attr["type"]] = rule
			}
		}
	})
	if err != nil {
		panic(err)
	}

	locales := map[string]LocaleData{}
	for _, localeName := range LocaleNames {
		tag := language.MustParse(strings.ReplaceAll(localeName, "_", "-"))
		locale := LocaleData{
			AvailableFormats: map[string]string{},
			DayPeriodSymbol:  map[string]CalendarSymbol{},
			DayPeriodVariant: map[string]string{},
			DayPeriodRules:   map[string]DayPeriodRule{},
			TimezoneName:     map[string]TimezoneName{},
		}
		if !tag.IsRoot() {
			parent := strings.Replace(tag.Parent().String(), "-", "_", 1)
			if tag.Parent().IsRoot() {
				parent = "root"
			}
			parentLocale, ok := locales[parent]
			if !ok {
				panic(fmt.Sprintf("%v: parent locale %v not found", localeName, parent))
			}
			locale = parentLocale
			locale.AvailableFormats = cloneMap(parentLocale.AvailableFormats)
			locale.DayPeriodSymbol = cloneMap(parentLocale.DayPeriodSymbol)
			locale.DayPeriodVariant = cloneMap(parentLocale.DayPeriodVariant)
			locale.DayPeriodRules = cloneMap(parentLocale.DayPeriodRules)
			locale.TimezoneName = cloneMap(parentLocale.TimezoneName)
		}
		if rules, ok := dayPeriodRules[strings.ReplaceAll(localeName, "_", "-")]; ok {
			locale.DayPeriodRules = cloneMap(rules)
		}

		err := readXMLLeafs("main/"+localeName+".xml", func(tags []string, attrs []map[string]string, content string) {
			if content == "↑↑↑" {
				return
			}
			if isTag(tags, attrs, "ldml/numbers/defaultNumberingSystem") {
				locale.NumberSystem = content
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/months/monthContext[type]/monthWidth[type]/month[type]") {
				if month, _ := strconv.Atoi(attrs[len(attrs)-1]["type"]); 1 <= month && month <= 12 {
					width := attrs[len(attrs)-2]["type"]
					context := attrs[len(attrs)-3]["type"]
					if context == "format" && width == "wide" {
						locale.MonthSymbol[month-1].Wide = content
					} else if context == "format" && width == "abbreviated" {
						locale.MonthSymbol[month-1].Abbreviated = content
					} else if context == "stand-alone" && width == "narrow" {
						locale.MonthSymbol[month-1].Narrow = content
					}
				}
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/days/dayContext[type]/dayWidth[type]/day[type]") {
				if day, ok := dayMap[attrs[len(attrs)-1]["type"]]; ok {
					width := attrs[len(attrs)-2]["type"]
					context := attrs[len(attrs)-3]["type"]
					if context == "format" && width == "wide" {
						locale.DaySymbol[day].Wide = content
					} else if context == "format" && width == "abbreviated" {
						locale.DaySymbol[day].Abbreviated = content
					} else if context == "stand-alone" && width == "narrow" {
						locale.DaySymbol[day].Narrow = content
					}
				}
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/dayPeriods/dayPeriodContext[type]/dayPeriodWidth[type]/dayPeriod[type]") {
				period := attrs[len(attrs)-1]["type"]
				width := attrs[len(attrs)-2]["type"]
				context := attrs[len(attrs)-3]["type"]
				if context != "format" {
					return
				}
				if attrs[len(attrs)-1]["alt"] == "variant" {
					if width == "abbreviated" {
						locale.DayPeriodVariant[period] = content
					}
					return
				}
				sym := locale.DayPeriodSymbol[period]
				switch width {
				case "wide":
					sym.Wide = content
				case "abbreviated":
					sym.Abbreviated = content
				case "narrow":
					sym.Narrow = content
				}
				locale.DayPeriodSymbol[period] = sym
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/eras/*/era[type]") {
				era, err := strconv.Atoi(attrs[len(attrs)-1]["type"])
				if err != nil || era < 0 || 1 < era {
					return
				}
				if attrs[len(attrs)-1]["alt"] == "variant" {
					if tags[len(tags)-2] == "eraAbbr" {
						locale.EraSymbol[era].Variant = content
					}
					return
				}
				switch tags[len(tags)-2] {
				case "eraNames":
					locale.EraSymbol[era].Wide = content
				case "eraAbbr":
					locale.EraSymbol[era].Abbreviated = content
				case "eraNarrow":
					locale.EraSymbol[era].Narrow = content
				}
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/dateFormats/dateFormatLength[type]/dateFormat/pattern") {
				setLength(&locale.DateFormat, attrs[len(attrs)-3]["type"], content)
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/timeFormats/timeFormatLength[type]/timeFormat/pattern") {
				setLength(&locale.TimeFormat, attrs[len(attrs)-3]["type"], content)
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/dateTimeFormats/dateTimeFormatLength[type]/dateTimeFormat/pattern") {
				setLength(&locale.DatetimeFormat, attrs[len(attrs)-3]["type"], content)
			} else if isTag(tags, attrs, "ldml/dates/calendars/calendar[type=gregorian]/dateTimeFormats/availableFormats/dateFormatItem[id]") {
				locale.AvailableFormats[attrs[len(attrs)-1]["id"]] = content
			} else if isTag(tags, attrs, "ldml/dates/timeZoneNames/metazone[type]/short/standard") {
				tz := locale.TimezoneName[attrs[len(attrs)-3]["type"]]
				tz.Short = content
				locale.TimezoneName[attrs[len(attrs)-3]["type"]] = tz
			} else if isTag(tags, attrs, "ldml/dates/timeZoneNames/metazone[type]/long/standard") {
				tz := locale.TimezoneName[attrs[len(attrs)-3]["type"]]
				tz.Long = content
				locale.TimezoneName[attrs[len(attrs)-3]["type"]] = tz
			}
		})
		if err != nil {
			panic(err)
		}
		if locale.NumberSystem == "" {
			locale.NumberSystem = "latn"
		}
		locales[localeName] = locale
	}

	f, err := os.Create("data_cldr.go")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	w.Write([]byte("// Automatically generated by gen_cldr.go\n"))
	w.Write([]byte("package datefmt\n"))

	types := []interface{}{CalendarFormat{}, CalendarSymbol{}, EraSymbol{}, TimezoneName{}, DayPeriodRule{}, LocaleData{}}
	for _, v := range types {
		t := reflect.TypeOf(v)
		fmt.Fprintf(w, "\ntype %v ", t.Name())
		if err := printType(w, t, 0); err != nil {
			panic(err)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "\nvar locales = map[localeKey]LocaleData{")
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	wi := NewPrefixer(w, "    ")
	for _, name := range names {
		fmt.Fprintf(wi, "\n{%q, %q}: ", name, "gregorian")
		if err := printValue(wi, reflect.ValueOf(locales[name]), 1); err != nil {
			panic(err)
		}
		fmt.Fprintf(wi, ",")
	}
	fmt.Fprintf(w, "\n}\n")
}

func setLength(f *CalendarFormat, length, content string) {
	switch length {
	case "full":
		f.Full = content
	case "long":
		f.Long = content
	case "medium":
		f.Medium = content
	case "short":
		f.Short = content
	}
}

// parseDayMinute parses "hh:mm" to minutes of day; "24:00" wraps to 0.
func parseDayMinute(s string) int {
	if s == "" {
		return -1
	}
	hours, _ := strconv.Atoi(s[:2])
	minutes, _ := strconv.Atoi(s[3:])
	return hours%24*60 + minutes
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

func readXMLLeafs(filename string, cb func([]string, []map[string]string, string)) error {
	if _, err := os.Stat(BasePath + filename); err != nil && err != os.ErrNotExist {
		return err
	} else if err == os.ErrNotExist {
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return err
		}
		f, err := os.Create(BasePath + filename)
		if err != nil {
			return err
		}

		resp, err := http.Get(BaseURL + filename)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if _, err := io.Copy(f, resp.Body); err != nil {
			return err
		}
	}

	f, err := os.Open(BasePath + filename)
	if err != nil {
		return err
	}

	state := 0
	tags := []string{}
	attrs := []map[string]string{}
	content := ""
	decoder := xml.NewDecoder(f)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return err
			}
			return nil
		}

		if elem, ok := t.(xml.StartElement); ok {
			tags = append(tags, elem.Name.Local)
			attr := map[string]string{}
			for _, a := range elem.Attr {
				attr[a.Name.Local] = a.Value
			}
			attrs = append(attrs, attr)
			content = ""
			state = 1
		} else if char, ok := t.(xml.CharData); ok && state == 1 {
			content = string(char)
		} else if _, ok = t.(xml.EndElement); ok {
			if state == 1 {
				cb(tags, attrs, content)
			}
			attrs = attrs[:len(attrs)-1]
			tags = tags[:len(tags)-1]
			state = 0
		} else {
			state = 0
		}
	}
}

func isTag(tags []string, attrs []map[string]string, s string) bool {
	elems := strings.Split(s, "/")
	if len(tags) != len(elems) {
		return false
	}
	for i, elem := range elems {
		if elem == "*" {
			continue
		}

		idx := strings.IndexByte(elem, '[')
		if idx == -1 {
			idx = len(elem)
		}

		tag := elem[:idx]
		if tag != tags[i] {
			return false
		}
		for idx < len(elem) {
			if elem[idx] != '[' {
				panic("wrong tag attr syntax")
			}
			end := strings.IndexByte(elem[idx+1:], ']')
			if end == -1 {
				panic("wrong tag attr syntax")
			}
			is := strings.IndexByte(elem[idx+1:], '=')
			if is == -1 || end < is {
				is = end
			}

			key := elem[idx+1 : idx+1+is]
			if key[0] == '!' {
				if _, ok := attrs[i][key[1:]]; ok {
					return false
				}
			} else if attrVal, ok := attrs[i][key]; !ok {
				return false
			} else if is != end {
				val := elem[idx+1+is+1 : idx+1+end]
				if val != attrVal {
					return false
				}
			}
			idx += 1 + end + 1
		}
	}
	return true
}

type Prefixer struct {
	io.Writer
	prefix []byte
}

func NewPrefixer(w io.Writer, prefix string) *Prefixer {
	return &Prefixer{w, []byte(prefix)}
}

func (w Prefixer) Write(b []byte) (int, error) {
	for i := len(b) - 1; 0 <= i; i-- {
		if b[i] == '\n' {
			b = append(b[:i+1], append(w.prefix, b[i+1:]...)...)
		}
	}
	return w.Writer.Write(b)
}

func printType(w io.Writer, t reflect.Type, level int) error {
	switch t.Kind() {
	case reflect.Int:
		fmt.Fprintf(w, "int")
	case reflect.Array:
		fmt.Fprintf(w, "[%d]", t.Len())
		if err := printType(w, t.Elem(), level+1); err != nil {
			return fmt.Errorf("array: %v", err)
		}
	case reflect.Map:
		fmt.Fprintf(w, "map[")
		if err := printType(w, t.Key(), level+1); err != nil {
			return fmt.Errorf("map key: %v", err)
		}
		fmt.Fprintf(w, "]")
		if err := printType(w, t.Elem(), level+1); err != nil {
			return fmt.Errorf("map value: %v", err)
		}
	case reflect.String:
		fmt.Fprintf(w, "string")
	case reflect.Struct:
		if 0 < level {
			fmt.Fprintf(w, t.Name())
		} else {
			fmt.Fprintf(w, "struct {")
			n := t.NumField()
			wi := NewPrefixer(w, "    ")
			fieldLen := 0
			for i := 0; i < n; i++ {
				if field := t.Field(i); fieldLen < len(field.Name) {
					fieldLen = len(field.Name)
				}
			}
			for i := 0; i < n; i++ {
				field := t.Field(i)
				fmt.Fprintf(wi, "\n%s%s ", field.Name, strings.Repeat(" ", fieldLen-len(field.Name)))
				if err := printType(wi, field.Type, level+1); err != nil {
					return fmt.Errorf("struct field %v: %v", field.Name, err)
				}
			}
			if 0 < n {
				fmt.Fprintf(w, "\n")
			}
			fmt.Fprintf(w, "}")
		}
	default:
		return fmt.Errorf("unsupported type: %v", t)
	}
	return nil
}

func printValue(w io.Writer, v reflect.Value, level int) error {
	switch v.Kind() {
	case reflect.Int:
		fmt.Fprintf(w, "%v", v.Int())
	case reflect.Array, reflect.Slice:
		fmt.Fprintf(w, "{")
		n := v.Len()
		wi := NewPrefixer(w, "    ")
		for i := 0; i < n; i++ {
			fmt.Fprintf(wi, "\n")
			if err := printValue(wi, v.Index(i), level+1); err != nil {
				return fmt.Errorf("array/slice index %v: %v", i, err)
			}
			fmt.Fprintf(wi, ",")
		}
		if 0 < n {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "}")
	case reflect.Map:
		fmt.Fprintf(w, "{")
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})
		wi := NewPrefixer(w, "    ")
		for i := 0; i < len(keys); i++ {
			fmt.Fprintf(wi, "\n")
			if err := printValue(wi, keys[i], level+1); err != nil {
				return fmt.Errorf("map key %v: %v", keys[i], err)
			}
			fmt.Fprintf(wi, ": ")
			if err := printValue(wi, v.MapIndex(keys[i]), level+1); err != nil {
				return fmt.Errorf("map value for %v: %v", keys[i], err)
			}
			fmt.Fprintf(wi, ",")
		}
		if 0 < v.Len() {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "}")
	case reflect.String:
		fmt.Fprintf(w, "%q", v.String())
	case reflect.Struct:
		fmt.Fprintf(w, "{")
		n := v.NumField()
		for i := 0; i < n; i++ {
			if i != 0 {
				fmt.Fprintf(w, ", ")
			}
			field := v.Field(i)
			if k := field.Kind(); k == reflect.Array || k == reflect.Map || k == reflect.Slice || k == reflect.Struct {
				if err := printType(w, field.Type(), level+1); err != nil {
					return fmt.Errorf("struct field %v: %v", v.Type().Field(i), err)
				}
			}
			if err := printValue(w, field, level+1); err != nil {
				return fmt.Errorf("struct field %v: %v", v.Type().Field(i), err)
			}
		}
		fmt.Fprintf(w, "}")
	default:
		return fmt.Errorf("unsupported value: %v", v)
	}
	return nil
}

// Automatically generated by gen_cldr.go
package datefmt

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

var locales = map[localeKey]LocaleData{
	{"root", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"y MMMM d, EEEE", "y MMMM d", "y MMM d", "y-MM-dd"},
		TimeFormat:     CalendarFormat{"HH:mm:ss zzzz", "HH:mm:ss z", "HH:mm:ss", "HH:mm"},
		DatetimeFormat: CalendarFormat{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Ed": "d, E", "Hm": "HH:mm", "Hms": "HH:mm:ss", "M": "L",
			"Md": "MM-dd", "MMMd": "MMM d", "y": "y", "yM": "y-MM", "yMd": "y-MM-dd",
			"yMMM": "y MMM", "yMMMd": "y MMM d",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"M01", "M01", "1"}, {"M02", "M02", "2"}, {"M03", "M03", "3"},
			{"M04", "M04", "4"}, {"M05", "M05", "5"}, {"M06", "M06", "6"},
			{"M07", "M07", "7"}, {"M08", "M08", "8"}, {"M09", "M09", "9"},
			{"M10", "M10", "10"}, {"M11", "M11", "11"}, {"M12", "M12", "12"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"Sun", "Sun", "S"}, {"Mon", "Mon", "M"}, {"Tue", "Tue", "T"},
			{"Wed", "Wed", "W"}, {"Thu", "Thu", "T"}, {"Fri", "Fri", "F"},
			{"Sat", "Sat", "S"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am": {"AM", "AM", "AM"},
			"pm": {"PM", "PM", "PM"},
		},
		DayPeriodVariant: map[string]string{},
		DayPeriodRules: map[string]DayPeriodRule{
			"morning1":   {360, 720},
			"afternoon1": {720, 1080},
			"evening1":   {1080, 1260},
			"night1":     {1260, 360},
		},
		EraSymbol: [2]EraSymbol{
			{"BCE", "BCE", "BCE", ""},
			{"CE", "CE", "CE", ""},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC": {"UTC", "UTC"},
		},
	},
	{"en", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"EEEE, MMMM d, y", "MMMM d, y", "MMM d, y", "M/d/yy"},
		TimeFormat:     CalendarFormat{"h:mm:ss a zzzz", "h:mm:ss a z", "h:mm:ss a", "h:mm a"},
		DatetimeFormat: CalendarFormat{"{1} 'at' {0}", "{1} 'at' {0}", "{1}, {0}", "{1}, {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Ed": "d E", "Gy": "y G", "Hm": "HH:mm", "Hms": "HH:mm:ss",
			"hm": "h:mm a", "hms": "h:mm:ss a", "M": "L", "Md": "M/d", "MEd": "E, M/d",
			"MMM": "LLL", "MMMd": "MMM d", "MMMEd": "E, MMM d", "y": "y", "yM": "M/y",
			"yMd": "M/d/y", "yMEd": "E, M/d/y", "yMMM": "MMM y", "yMMMd": "MMM d, y",
			"yMMMEd": "E, MMM d, y",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"January", "Jan", "J"}, {"February", "Feb", "F"}, {"March", "Mar", "M"},
			{"April", "Apr", "A"}, {"May", "May", "M"}, {"June", "Jun", "J"},
			{"July", "Jul", "J"}, {"August", "Aug", "A"}, {"September", "Sep", "S"},
			{"October", "Oct", "O"}, {"November", "Nov", "N"}, {"December", "Dec", "D"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"Sunday", "Sun", "S"}, {"Monday", "Mon", "M"}, {"Tuesday", "Tue", "T"},
			{"Wednesday", "Wed", "W"}, {"Thursday", "Thu", "T"}, {"Friday", "Fri", "F"},
			{"Saturday", "Sat", "S"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am":         {"AM", "AM", "a"},
			"pm":         {"PM", "PM", "p"},
			"midnight":   {"midnight", "midnight", "mi"},
			"noon":       {"noon", "noon", "n"},
			"morning1":   {"in the morning", "in the morning", "in the morning"},
			"afternoon1": {"in the afternoon", "in the afternoon", "in the afternoon"},
			"evening1":   {"in the evening", "in the evening", "in the evening"},
			"night1":     {"at night", "at night", "at night"},
		},
		DayPeriodVariant: map[string]string{
			"am": "am",
			"pm": "pm",
		},
		DayPeriodRules: map[string]DayPeriodRule{
			"midnight":   {0, -1},
			"noon":       {720, -1},
			"morning1":   {360, 720},
			"afternoon1": {720, 1080},
			"evening1":   {1080, 1260},
			"night1":     {1260, 360},
		},
		EraSymbol: [2]EraSymbol{
			{"Before Christ", "BC", "B", "BCE"},
			{"Anno Domini", "AD", "A", "CE"},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC":             {"UTC", "GMT"},
			"Etc/GMT":             {"GMT", "Greenwich Mean Time"},
			"America/Los_Angeles": {"PT", "Pacific Time"},
			"America/New_York":    {"ET", "Eastern Time"},
		},
	},
	{"en_GB", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"EEEE, d MMMM y", "d MMMM y", "d MMM y", "dd/MM/y"},
		TimeFormat:     CalendarFormat{"HH:mm:ss zzzz", "HH:mm:ss z", "HH:mm:ss", "HH:mm"},
		DatetimeFormat: CalendarFormat{"{1} 'at' {0}", "{1} 'at' {0}", "{1}, {0}", "{1}, {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Ed": "E d", "Hm": "HH:mm", "Hms": "HH:mm:ss", "M": "L",
			"Md": "dd/MM", "MEd": "E dd/MM", "MMMd": "d MMM", "MMMEd": "E d MMM",
			"y": "y", "yM": "MM/y", "yMd": "dd/MM/y", "yMMM": "MMM y",
			"yMMMd": "d MMM y", "yMMMEd": "E, d MMM y",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"January", "Jan", "J"}, {"February", "Feb", "F"}, {"March", "Mar", "M"},
			{"April", "Apr", "A"}, {"May", "May", "M"}, {"June", "Jun", "J"},
			{"July", "Jul", "J"}, {"August", "Aug", "A"}, {"September", "Sep", "S"},
			{"October", "Oct", "O"}, {"November", "Nov", "N"}, {"December", "Dec", "D"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"Sunday", "Sun", "S"}, {"Monday", "Mon", "M"}, {"Tuesday", "Tue", "T"},
			{"Wednesday", "Wed", "W"}, {"Thursday", "Thu", "T"}, {"Friday", "Fri", "F"},
			{"Saturday", "Sat", "S"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am":       {"am", "am", "a"},
			"pm":       {"pm", "pm", "p"},
			"midnight": {"midnight", "midnight", "mi"},
			"noon":     {"noon", "noon", "n"},
		},
		DayPeriodVariant: map[string]string{
			"am": "am",
			"pm": "pm",
		},
		DayPeriodRules: map[string]DayPeriodRule{
			"midnight":   {0, -1},
			"noon":       {720, -1},
			"morning1":   {360, 720},
			"afternoon1": {720, 1080},
			"evening1":   {1080, 1260},
			"night1":     {1260, 360},
		},
		EraSymbol: [2]EraSymbol{
			{"Before Christ", "BC", "B", "BCE"},
			{"Anno Domini", "AD", "A", "CE"},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC":       {"UTC", "GMT"},
			"Etc/GMT":       {"GMT", "Greenwich Mean Time"},
			"Europe/London": {"GMT", "Greenwich Mean Time"},
		},
	},
	{"fr", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"EEEE d MMMM y", "d MMMM y", "d MMM y", "dd/MM/y"},
		TimeFormat:     CalendarFormat{"HH:mm:ss zzzz", "HH:mm:ss z", "HH:mm:ss", "HH:mm"},
		DatetimeFormat: CalendarFormat{"{1} 'à' {0}", "{1} 'à' {0}", "{1}, {0}", "{1} {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Ed": "E d", "Hm": "HH:mm", "Hms": "HH:mm:ss", "hm": "h:mm a",
			"M": "L", "Md": "dd/MM", "MEd": "E dd/MM", "MMMd": "d MMM",
			"MMMEd": "E d MMM", "y": "y", "yM": "MM/y", "yMd": "dd/MM/y",
			"yMMM": "MMM y", "yMMMd": "d MMM y", "yMMMEd": "E d MMM y",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"janvier", "janv.", "J"}, {"février", "févr.", "F"}, {"mars", "mars", "M"},
			{"avril", "avr.", "A"}, {"mai", "mai", "M"}, {"juin", "juin", "J"},
			{"juillet", "juil.", "J"}, {"août", "août", "A"}, {"septembre", "sept.", "S"},
			{"octobre", "oct.", "O"}, {"novembre", "nov.", "N"}, {"décembre", "déc.", "D"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"dimanche", "dim.", "D"}, {"lundi", "lun.", "L"}, {"mardi", "mar.", "M"},
			{"mercredi", "mer.", "M"}, {"jeudi", "jeu.", "J"}, {"vendredi", "ven.", "V"},
			{"samedi", "sam.", "S"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am":         {"AM", "AM", "AM"},
			"pm":         {"PM", "PM", "PM"},
			"midnight":   {"minuit", "minuit", "minuit"},
			"noon":       {"midi", "midi", "midi"},
			"morning1":   {"du matin", "du matin", "du matin"},
			"afternoon1": {"de l'après-midi", "de l'après-midi", "de l'après-midi"},
			"evening1":   {"du soir", "du soir", "du soir"},
			"night1":     {"du matin", "du matin", "du matin"},
		},
		DayPeriodVariant: map[string]string{},
		DayPeriodRules: map[string]DayPeriodRule{
			"midnight":   {0, -1},
			"noon":       {720, -1},
			"morning1":   {240, 720},
			"afternoon1": {720, 1080},
			"evening1":   {1080, 1440},
			"night1":     {0, 240},
		},
		EraSymbol: [2]EraSymbol{
			{"avant Jésus-Christ", "av. J.-C.", "av. J.-C.", "AEC"},
			{"après Jésus-Christ", "ap. J.-C.", "ap. J.-C.", "EC"},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC":      {"UTC", "UTC"},
			"Etc/GMT":      {"GMT", "heure moyenne de Greenwich"},
			"Europe/Paris": {"HEC", "heure d'Europe centrale"},
		},
	},
	{"es", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"EEEE, d 'de' MMMM 'de' y", "d 'de' MMMM 'de' y", "d MMM y", "d/M/yy"},
		TimeFormat:     CalendarFormat{"H:mm:ss (zzzz)", "H:mm:ss z", "H:mm:ss", "H:mm"},
		DatetimeFormat: CalendarFormat{"{1}, {0}", "{1}, {0}", "{1}, {0}", "{1}, {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Ed": "E d", "Hm": "H:mm", "Hms": "H:mm:ss", "M": "L",
			"Md": "d/M", "MEd": "E, d/M", "MMMd": "d MMM", "MMMEd": "E, d MMM",
			"y": "y", "yM": "M/y", "yMd": "d/M/y", "yMMM": "MMM y", "yMMMd": "d MMM y",
			"yMMMEd": "EEE, d MMM y",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"enero", "ene", "E"}, {"febrero", "feb", "F"}, {"marzo", "mar", "M"},
			{"abril", "abr", "A"}, {"mayo", "may", "M"}, {"junio", "jun", "J"},
			{"julio", "jul", "J"}, {"agosto", "ago", "A"}, {"septiembre", "sept", "S"},
			{"octubre", "oct", "O"}, {"noviembre", "nov", "N"}, {"diciembre", "dic", "D"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"domingo", "dom", "D"}, {"lunes", "lun", "L"}, {"martes", "mar", "M"},
			{"miércoles", "mié", "X"}, {"jueves", "jue", "J"}, {"viernes", "vie", "V"},
			{"sábado", "sáb", "S"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am":         {"a. m.", "a. m.", "a. m."},
			"pm":         {"p. m.", "p. m.", "p. m."},
			"midnight":   {"medianoche", "medianoche", "medianoche"},
			"noon":       {"mediodía", "mediodía", "mediodía"},
			"morning1":   {"de la madrugada", "de la madrugada", "de la madrugada"},
			"morning2":   {"de la mañana", "de la mañana", "de la mañana"},
			"evening1":   {"de la tarde", "de la tarde", "de la tarde"},
			"night1":     {"de la noche", "de la noche", "de la noche"},
		},
		DayPeriodVariant: map[string]string{},
		DayPeriodRules: map[string]DayPeriodRule{
			"noon":     {720, -1},
			"morning1": {0, 360},
			"morning2": {360, 720},
			"evening1": {720, 1200},
			"night1":   {1200, 1440},
		},
		EraSymbol: [2]EraSymbol{
			{"antes de Cristo", "a. C.", "a. C.", "a. e. c."},
			{"después de Cristo", "d. C.", "d. C.", "e. c."},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC":       {"UTC", "UTC"},
			"Europe/Paris":  {"CET", "hora estándar de Europa central"},
			"Europe/Madrid": {"CET", "hora estándar de Europa central"},
		},
	},
	{"ar", "gregorian"}: {
		NumberSystem:   "arab",
		DateFormat:     CalendarFormat{"EEEE، d MMMM y", "d MMMM y", "dd/MM/y", "d/M/y"},
		TimeFormat:     CalendarFormat{"h:mm:ss a zzzz", "h:mm:ss a z", "h:mm:ss a", "h:mm a"},
		DatetimeFormat: CalendarFormat{"{1} في {0}", "{1} في {0}", "{1}، {0}", "{1}، {0}"},
		AvailableFormats: map[string]string{
			"d": "d", "Hm": "HH:mm", "Hms": "HH:mm:ss", "hm": "h:mm a", "M": "L",
			"Md": "d/M", "MMMd": "d MMM", "y": "y", "yM": "M/y", "yMd": "d/M/y",
			"yMMMd": "d MMM y",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"يناير", "يناير", "ي"}, {"فبراير", "فبراير", "ف"}, {"مارس", "مارس", "م"},
			{"أبريل", "أبريل", "أ"}, {"مايو", "مايو", "و"}, {"يونيو", "يونيو", "ن"},
			{"يوليو", "يوليو", "ل"}, {"أغسطس", "أغسطس", "غ"}, {"سبتمبر", "سبتمبر", "س"},
			{"أكتوبر", "أكتوبر", "ك"}, {"نوفمبر", "نوفمبر", "ب"}, {"ديسمبر", "ديسمبر", "د"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"الأحد", "الأحد", "ح"}, {"الاثنين", "الاثنين", "ن"}, {"الثلاثاء", "الثلاثاء", "ث"},
			{"الأربعاء", "الأربعاء", "ر"}, {"الخميس", "الخميس", "خ"}, {"الجمعة", "الجمعة", "ج"},
			{"السبت", "السبت", "س"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am": {"صباحًا", "ص", "ص"},
			"pm": {"مساءً", "م", "م"},
		},
		DayPeriodVariant: map[string]string{},
		DayPeriodRules: map[string]DayPeriodRule{
			"morning1":   {180, 360},
			"morning2":   {360, 720},
			"afternoon1": {720, 1080},
			"evening1":   {1080, 1440},
			"night1":     {0, 60},
			"night2":     {60, 180},
		},
		EraSymbol: [2]EraSymbol{
			{"قبل الميلاد", "ق.م", "ق.م", ""},
			{"ميلادي", "م", "م", ""},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC": {"UTC", "التوقيت العالمي المنسق"},
		},
	},
	{"ja", "gregorian"}: {
		NumberSystem:   "latn",
		DateFormat:     CalendarFormat{"y年M月d日EEEE", "y年M月d日", "y/MM/dd", "y/MM/dd"},
		TimeFormat:     CalendarFormat{"H時mm分ss秒 zzzz", "H:mm:ss z", "H:mm:ss", "H:mm"},
		DatetimeFormat: CalendarFormat{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		AvailableFormats: map[string]string{
			"d": "d日", "Hm": "H:mm", "Hms": "H:mm:ss", "M": "M月", "Md": "M/d",
			"MMMd": "M月d日", "y": "y年", "yM": "y/M", "yMd": "y/M/d",
			"yMMMd": "y年M月d日",
		},
		MonthSymbol: [12]CalendarSymbol{
			{"1月", "1月", "1"}, {"2月", "2月", "2"}, {"3月", "3月", "3"},
			{"4月", "4月", "4"}, {"5月", "5月", "5"}, {"6月", "6月", "6"},
			{"7月", "7月", "7"}, {"8月", "8月", "8"}, {"9月", "9月", "9"},
			{"10月", "10月", "10"}, {"11月", "11月", "11"}, {"12月", "12月", "12"},
		},
		DaySymbol: [7]CalendarSymbol{
			{"日曜日", "日", "日"}, {"月曜日", "月", "月"}, {"火曜日", "火", "火"},
			{"水曜日", "水", "水"}, {"木曜日", "木", "木"}, {"金曜日", "金", "金"},
			{"土曜日", "土", "土"},
		},
		DayPeriodSymbol: map[string]CalendarSymbol{
			"am":       {"午前", "午前", "午前"},
			"pm":       {"午後", "午後", "午後"},
			"midnight": {"真夜中", "真夜中", "真夜中"},
			"noon":     {"正午", "正午", "正午"},
		},
		DayPeriodVariant: map[string]string{},
		DayPeriodRules: map[string]DayPeriodRule{
			"midnight":   {0, -1},
			"noon":       {720, -1},
			"morning1":   {240, 720},
			"afternoon1": {720, 960},
			"evening1":   {960, 1140},
			"night1":     {1140, 1440},
			"night2":     {0, 240},
		},
		EraSymbol: [2]EraSymbol{
			{"紀元前", "紀元前", "BC", ""},
			{"西暦", "西暦", "AD", ""},
		},
		TimezoneName: map[string]TimezoneName{
			"Etc/UTC":    {"UTC", "協定世界時"},
			"Asia/Tokyo": {"JST", "日本標準時"},
		},
	},
}

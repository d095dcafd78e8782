package culture

var (
	englishMonths = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	englishMonthsAbbr = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	englishDays     = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	englishDaysAbbr = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

func plainNumber(dec, group string, sizes ...int) NumberFormat {
	return NumberFormat{
		DecimalSep: dec,
		GroupSep:   group,
		GroupSizes: sizes,
		NegPattern: "-n",
		PosPattern: "n",
		NegSymbol:  "-",
		PosSymbol:  "+",
		Decimals:   2,
	}
}

func symbolNumber(base NumberFormat, neg, pos, symbol string, decimals int) NumberFormat {
	base.NegPattern = neg
	base.PosPattern = pos
	base.Symbol = symbol
	base.Decimals = decimals
	return base
}

func invariantInfo() *Info {
	num := plainNumber(".", ",", 3)
	return &Info{
		Name:     Invariant,
		Number:   num,
		Currency: symbolNumber(num, "($n)", "$n", "¤", 2),
		Percent:  symbolNumber(num, "-n %", "n %", "%", 2),
		DateTime: DateTimeFormat{
			ShortDatePattern: "MM/dd/yyyy",
			LongDatePattern:  "dddd, dd MMMM yyyy",
			AbbrDatePattern:  "dd MMM yyyy",
			YearMonthPattern: "yyyy MMMM",
			MonthDayPattern:  "MMMM dd",
			Months:           englishMonths,
			MonthsAbbr:       englishMonthsAbbr,
			Days:             englishDays,
			DaysAbbr:         englishDaysAbbr,
			ShortTimePattern: "HH:mm",
			LongTimePattern:  "HH:mm:ss",
			AM:               "AM",
			PM:               "PM",
			TimeSep:          ":",
			ShortDateSep:     "/",
			TwoDigitYearMax:  2029,
		},
	}
}

func builtinCultures() []*Info {
	us := plainNumber(".", ",", 3)
	gb := plainNumber(".", ",", 3)
	fr := plainNumber(",", "\u00a0", 3)
	de := plainNumber(",", ".", 3)
	nl := plainNumber(",", ".", 3)
	in := plainNumber(".", ",", 3, 2)
	jp := plainNumber(".", ",", 3)
	se := plainNumber(",", "\u00a0", 3)

	return []*Info{
		invariantInfo(),
		{
			Name:     "en-US",
			Number:   us,
			Currency: symbolNumber(us, "($n)", "$n", "$", 2),
			Percent:  symbolNumber(us, "-n %", "n %", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "M/d/yyyy",
				LongDatePattern:  "dddd, MMMM d, yyyy",
				AbbrDatePattern:  "MMM d, yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "MMMM d",
				Months:           englishMonths,
				MonthsAbbr:       englishMonthsAbbr,
				Days:             englishDays,
				DaysAbbr:         englishDaysAbbr,
				ShortTimePattern: "h:mm tt",
				LongTimePattern:  "h:mm:ss tt",
				AM:               "AM",
				PM:               "PM",
				TimeSep:          ":",
				ShortDateSep:     "/",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "en-GB",
			Number:   gb,
			Currency: symbolNumber(gb, "-$n", "$n", "£", 2),
			Percent:  symbolNumber(gb, "-n%", "n%", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "dd/MM/yyyy",
				LongDatePattern:  "dd MMMM yyyy",
				AbbrDatePattern:  "dd MMM yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "dd MMMM",
				Months:           englishMonths,
				MonthsAbbr:       englishMonthsAbbr,
				Days:             englishDays,
				DaysAbbr:         englishDaysAbbr,
				ShortTimePattern: "HH:mm",
				LongTimePattern:  "HH:mm:ss",
				AM:               "AM",
				PM:               "PM",
				TimeSep:          ":",
				ShortDateSep:     "/",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "fr-FR",
			Number:   fr,
			Currency: symbolNumber(fr, "-n $", "n $", "€", 2),
			Percent:  symbolNumber(fr, "-n %", "n %", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "dd/MM/yyyy",
				LongDatePattern:  "dddd d MMMM yyyy",
				AbbrDatePattern:  "d MMM yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "d MMMM",
				Months: []string{
					"janvier", "février", "mars", "avril", "mai", "juin",
					"juillet", "août", "septembre", "octobre", "novembre", "décembre",
				},
				MonthsAbbr: []string{
					"janv.", "févr.", "mars", "avr.", "mai", "juin",
					"juil.", "août", "sept.", "oct.", "nov.", "déc.",
				},
				Days:             []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
				DaysAbbr:         []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
				ShortTimePattern: "HH:mm",
				LongTimePattern:  "HH:mm:ss",
				TimeSep:          ":",
				ShortDateSep:     "/",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "de-DE",
			Number:   de,
			Currency: symbolNumber(de, "-n $", "n $", "€", 2),
			Percent:  symbolNumber(de, "-n%", "n%", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "dd.MM.yyyy",
				LongDatePattern:  "dddd, d. MMMM yyyy",
				AbbrDatePattern:  "d. MMM yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "dd MMMM",
				Months: []string{
					"Januar", "Februar", "März", "April", "Mai", "Juni",
					"Juli", "August", "September", "Oktober", "November", "Dezember",
				},
				MonthsAbbr: []string{
					"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
					"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
				},
				Days:             []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
				DaysAbbr:         []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
				ShortTimePattern: "HH:mm",
				LongTimePattern:  "HH:mm:ss",
				TimeSep:          ":",
				ShortDateSep:     ".",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "nl-NL",
			Number:   nl,
			Currency: symbolNumber(nl, "$ -n", "$ n", "€", 2),
			Percent:  symbolNumber(nl, "-n %", "n %", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "d-M-yyyy",
				LongDatePattern:  "dddd d MMMM yyyy",
				AbbrDatePattern:  "d MMM yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "dd MMMM",
				Months: []string{
					"januari", "februari", "maart", "april", "mei", "juni",
					"juli", "augustus", "september", "oktober", "november", "december",
				},
				MonthsAbbr: []string{
					"jan", "feb", "mrt", "apr", "mei", "jun",
					"jul", "aug", "sep", "okt", "nov", "dec",
				},
				Days:             []string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
				DaysAbbr:         []string{"zo", "ma", "di", "wo", "do", "vr", "za"},
				ShortTimePattern: "H:mm",
				LongTimePattern:  "H:mm:ss",
				TimeSep:          ":",
				ShortDateSep:     "-",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "hi-IN",
			Number:   in,
			Currency: symbolNumber(in, "$ -n", "$ n", "₹", 2),
			Percent:  symbolNumber(in, "-n %", "n %", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "dd-MM-yyyy",
				LongDatePattern:  "dd MMMM yyyy",
				AbbrDatePattern:  "dd MMM yyyy",
				YearMonthPattern: "MMMM, yyyy",
				MonthDayPattern:  "dd MMMM",
				Months: []string{
					"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
					"जुलाई", "अगस्त", "सितंबर", "अक्तूबर", "नवंबर", "दिसंबर",
				},
				MonthsAbbr: []string{
					"जन.", "फ़र.", "मार्च", "अप्रै.", "मई", "जून",
					"जुला.", "अग.", "सितं.", "अक्तू.", "नवं.", "दिसं.",
				},
				Days:             []string{"रविवार", "सोमवार", "मंगलवार", "बुधवार", "गुरुवार", "शुक्रवार", "शनिवार"},
				DaysAbbr:         []string{"रवि.", "सोम.", "मंगल.", "बुध.", "गुरु.", "शुक्र.", "शनि."},
				ShortTimePattern: "HH:mm",
				LongTimePattern:  "HH:mm:ss",
				AM:               "पूर्वाह्न",
				PM:               "अपराह्न",
				TimeSep:          ":",
				ShortDateSep:     "-",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "ja-JP",
			Number:   jp,
			Currency: symbolNumber(jp, "-$n", "$n", "¥", 0),
			Percent:  symbolNumber(jp, "-n%", "n%", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "yyyy/MM/dd",
				LongDatePattern:  "yyyy'年'M'月'd'日'",
				AbbrDatePattern:  "yyyy'年'M'月'd'日'",
				YearMonthPattern: "yyyy'年'M'月'",
				MonthDayPattern:  "M'月'd'日'",
				Months: []string{
					"1月", "2月", "3月", "4月", "5月", "6月",
					"7月", "8月", "9月", "10月", "11月", "12月",
				},
				MonthsAbbr: []string{
					"1", "2", "3", "4", "5", "6",
					"7", "8", "9", "10", "11", "12",
				},
				Days:             []string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
				DaysAbbr:         []string{"日", "月", "火", "水", "木", "金", "土"},
				ShortTimePattern: "H:mm",
				LongTimePattern:  "H:mm:ss",
				AM:               "午前",
				PM:               "午後",
				TimeSep:          ":",
				ShortDateSep:     "/",
				TwoDigitYearMax:  2029,
			},
		},
		{
			Name:     "sv-SE",
			Number:   se,
			Currency: symbolNumber(se, "-n $", "n $", "kr", 2),
			Percent:  symbolNumber(se, "-n %", "n %", "%", 2),
			DateTime: DateTimeFormat{
				ShortDatePattern: "yyyy-MM-dd",
				LongDatePattern:  "'den 'd MMMM yyyy",
				AbbrDatePattern:  "d MMM yyyy",
				YearMonthPattern: "MMMM yyyy",
				MonthDayPattern:  "'den 'd MMMM",
				Months: []string{
					"januari", "februari", "mars", "april", "maj", "juni",
					"juli", "augusti", "september", "oktober", "november", "december",
				},
				MonthsAbbr: []string{
					"jan", "feb", "mar", "apr", "maj", "jun",
					"jul", "aug", "sep", "okt", "nov", "dec",
				},
				Days:             []string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"},
				DaysAbbr:         []string{"sö", "må", "ti", "on", "to", "fr", "lö"},
				ShortTimePattern: "HH:mm",
				LongTimePattern:  "HH:mm:ss",
				TimeSep:          ":",
				ShortDateSep:     "-",
				TwoDigitYearMax:  2029,
			},
		},
	}
}

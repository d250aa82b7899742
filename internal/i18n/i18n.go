// Package i18n holds the static message table for the three supported
// display languages.
package i18n

// Lang is a display language code
type Lang string

const (
	Chinese Lang = "zh"
	English Lang = "en"
	German  Lang = "de"
)

// Key identifies a localized message
type Key string

const (
	Title              Key = "title"
	InputDate          Key = "input_date"
	InputCity          Key = "input_city"
	Date               Key = "date"
	Timezone           Key = "timezone"
	Location           Key = "location"
	Coordinates        Key = "coordinates"
	Sunrise            Key = "sunrise"
	Sunset             Key = "sunset"
	Temperature        Key = "temperature"
	FeelsLike          Key = "feels_like"
	Precipitation      Key = "precipitation"
	Wind               Key = "wind"
	Cloud              Key = "cloud"
	InvalidChoice      Key = "invalid_choice"
	WeatherUnavailable Key = "weather_unavailable"
	NoSunEvent         Key = "no_sun_event"
	Error              Key = "error"
)

var messages = map[Key]map[Lang]string{
	Title: {
		Chinese: "记录光的升起与落下。",
		English: "Tracking the rising and fading of light.",
		German:  "Beobachtung des Auf- und Untergangs des Lichts.",
	},
	InputDate: {
		Chinese: "输入日期（YYYY-MM-DD，直接回车=今天）：",
		English: "Enter date (YYYY-MM-DD, press Enter for today): ",
		German:  "Datum eingeben (YYYY-MM-DD, Enter = heute): ",
	},
	InputCity: {
		Chinese: "输入城市名（中文或英文，如：慕尼黑 / Munich / 北京 / Beijing）：",
		English: "Enter city name (Chinese or English, e.g. Munich / Beijing): ",
		German:  "Stadtname eingeben (Chinesisch oder Englisch, z.B. München / Beijing): ",
	},
	Date:          {Chinese: "日期", English: "Date", German: "Datum"},
	Timezone:      {Chinese: "时区", English: "Time zone", German: "Zeitzone"},
	Location:      {Chinese: "地点", English: "Location", German: "Ort"},
	Coordinates:   {Chinese: "坐标", English: "Coordinates", German: "Koordinaten"},
	Sunrise:       {Chinese: "日出", English: "Sunrise", German: "Sonnenaufgang"},
	Sunset:        {Chinese: "日落", English: "Sunset", German: "Sonnenuntergang"},
	Temperature:   {Chinese: "当前气温", English: "Temperature", German: "Temperatur"},
	FeelsLike:     {Chinese: "体感温度", English: "Feels like", German: "Gefühlte Temperatur"},
	Precipitation: {Chinese: "降水", English: "Precipitation", German: "Niederschlag"},
	Wind:          {Chinese: "风速", English: "Wind speed", German: "Windgeschwindigkeit"},
	Cloud:         {Chinese: "云量", English: "Cloud cover", German: "Bewölkung"},
	InvalidChoice: {
		Chinese: "输入无效，默认使用 English.",
		English: "Invalid choice, defaulting to English.",
		German:  "Ungültige Eingabe, Standard ist English.",
	},
	WeatherUnavailable: {
		Chinese: "天气数据获取失败（请检查网络/坐标/时区输入）",
		English: "Weather data unavailable (check network/coordinates/time zone)",
		German:  "Wetterdaten nicht verfügbar (Netzwerk/Koordinaten/Zeitzone prüfen)",
	},
	NoSunEvent: {
		Chinese: "该日期无日出或日落（极昼/极夜）",
		English: "No sunrise or sunset on this date (polar day/night)",
		German:  "Kein Sonnenauf- oder -untergang an diesem Datum (Polartag/-nacht)",
	},
	Error: {Chinese: "错误", English: "Error", German: "Fehler"},
}

// Languages returns the supported languages in menu order
func Languages() []Lang {
	return []Lang{Chinese, English, German}
}

// Keys returns every message key in the table
func Keys() []Key {
	keys := make([]Key, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	return keys
}

// T looks up the message for key in lang. Unknown languages fall back to
// English; unknown keys return the key itself.
func T(lang Lang, key Key) string {
	byLang, ok := messages[key]
	if !ok {
		return string(key)
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[English]
}

// ParseChoice maps a menu answer to a language. Anything but "1", "2" or
// "3" yields English with ok=false.
func ParseChoice(input string) (Lang, bool) {
	switch input {
	case "1":
		return Chinese, true
	case "2":
		return English, true
	case "3":
		return German, true
	default:
		return English, false
	}
}

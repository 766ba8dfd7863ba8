// Package i18n holds the English/Japanese message catalog shared by the
// validators, the calculators and the report writers.
package i18n

import (
	"log"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// English keys double as format strings, so only Japanese needs entries.
var japanese = map[string]string{
	"Please enter a valid number":                                       "有効な数値を入力してください",
	"Value must be between %s and %s %s":                                "値は %s から %s %s の範囲内である必要があります",
	"%s must be positive":                                               "%sは正の値である必要があります",
	"%s cannot be zero (division by zero)":                              "%sはゼロにできません（ゼロ除算エラー）",
	"VC winding width must be greater than plate thickness":             "VC巻き幅はplate厚さより大きい必要があります",
	"Panel thickness must be less than half of each external dimension": "板厚は各外寸の半分未満である必要があります",
	"Invalid configuration: panel thickness is too large for the given external dimensions": "無効な構成: 指定された外寸に対して板厚が大きすぎます",
	"Unknown parameter %s":         "不明なパラメータ %s",
	"A calculation error occurred": "計算エラーが発生しました",
	"Unknown calculation mode %s":  "不明な計算モード %s",

	"All dimensions":   "すべての寸法",
	"Panel thickness":  "板厚",
	"VC winding width": "VC巻き幅",
	"Plate thickness":  "plate厚さ",
	"Qes + Qms":        "Qes + Qms",

	"Thiele-Small parameters": "TSパラメータ",
	"Sound pressure level":    "音圧レベル",
	"Advanced SPL":            "音圧レベル（詳細）",
	"Amplitude":               "振幅",
	"Crossover network":       "クロスオーバーネットワーク",
	"Box volume":              "箱容積",
	"Thin film resistance":    "薄膜抵抗",
	"Open tube resonance":     "開管共鳴",
	"Frequency response":      "周波数特性",
	"Inputs":                  "入力値",
	"Results":                 "計算結果",
	"Errors":                  "エラー",
	"Project: %s":             "プロジェクト: %s",
	"Author: %s":              "作成者: %s",
	"Date: %s":                "日付: %s",
	"not available":           "計算不可",
	"Woofer":                  "ウーファー",
	"Tweeter":                 "ツイーター",
	"Capacitors":              "コンデンサ",
	"Inductors":               "コイル",
}

func init() {
	for key, msg := range japanese {
		if err := message.SetString(language.Japanese, key, msg); err != nil {
			log.Printf("i18n: catalog entry %q: %v", key, err)
		}
	}
}

// Printer returns a printer for a language name such as "en" or "ja".
// Unknown names fall back to English.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}

// Match picks the closest supported language for an Accept-Language style
// list.
func Match(accept ...string) language.Tag {
	var prefs []language.Tag
	for _, a := range accept {
		tags, _, err := language.ParseAcceptLanguage(a)
		if err != nil {
			continue
		}
		prefs = append(prefs, tags...)
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Tag honors the "lang" query parameter first, then the Accept-Language
// header, then the configured default.
func Tag(r *http.Request, fallback string) language.Tag {
	if q := r.URL.Query().Get("lang"); q != "" {
		return Match(q)
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return Match(h, fallback)
	}
	return Match(fallback)
}

// FromRequest returns a printer for the language Tag picks.
func FromRequest(r *http.Request, fallback string) *message.Printer {
	return message.NewPrinter(Tag(r, fallback))
}

func IsJapanese(tag language.Tag) bool {
	return tag == language.Japanese
}

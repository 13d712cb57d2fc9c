package server

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paipuScope/internal/model"
)

// kst is the display timezone for the date field.
var kst = time.FixedZone("KST", 9*60*60)

// errorFieldOffset pads error rows so the message lands past the columns
// a success row would fill.
const errorFieldOffset = 10

// SummaryRow projects a summary onto one CSV row: localized date,
// nickname and final point per player in rank order, room id, and, only
// when highlights exist, an empty field followed by the joined highlight
// list.
func SummaryRow(summary *model.Summary) []string {
	date := time.Unix(summary.StartTime, 0).In(kst)
	row := []string{fmt.Sprintf("%d년 %d월 %d일", date.Year(), int(date.Month()), date.Day())}
	for _, player := range summary.Ranks {
		row = append(row, player.Nickname, strconv.Itoa(player.FinalPoint))
	}
	row = append(row, strconv.FormatUint(uint64(summary.RoomID), 10))
	if len(summary.NotedYakus) > 0 {
		noted := make([]string, 0, len(summary.NotedYakus))
		for _, yaku := range summary.NotedYakus {
			noted = append(noted, fmt.Sprintf("%d위 %s", yaku.Player.Rank, yaku.Yaku))
		}
		row = append(row, "", strings.Join(noted, "/"))
	}
	return row
}

// ErrorRow projects validation errors onto one CSV row.
func ErrorRow(errs []model.ValidationError) []string {
	row := make([]string, errorFieldOffset)
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, "("+err.Message+")")
	}
	return append(row, "Error: "+strings.Join(messages, " & "))
}

// WriteCSVRow renders one row in CRLF-terminated CSV form.
func WriteCSVRow(row []string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.UseCRLF = true
	if err := w.Write(row); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sentinela/gateway/internal/models"
)

type DailySummary struct {
	Total    int                `json:"total"`
	Average  float64            `json:"average"`
	Peak     *models.DailyCount `json:"peak,omitempty"`
	ZeroDays int                `json:"zero_days"`
}

// DailyTotals sums the daily counts. The peak is the first day holding the
// maximum; with no days the average is 0 and there is no peak.
func DailyTotals(days []models.DailyCount) DailySummary {
	var s DailySummary
	if len(days) == 0 {
		return s
	}
	peak := days[0]
	for _, d := range days {
		s.Total += d.Llamadas
		if d.Llamadas > peak.Llamadas {
			peak = d
		}
		if d.Llamadas == 0 {
			s.ZeroDays++
		}
	}
	s.Average = float64(s.Total) / float64(len(days))
	s.Peak = &peak
	return s
}

// HourOf returns the hour of an "HH:MM" string: the leading integer of the
// part before the first colon. ok is false when there is no leading integer
// or it falls outside 0..23.
func HourOf(hora string) (hour int, ok bool) {
	head, _, _ := strings.Cut(hora, ":")
	head = strings.TrimLeft(head, " \t")
	neg := false
	if head != "" && (head[0] == '+' || head[0] == '-') {
		neg = head[0] == '-'
		head = head[1:]
	}
	digits := 0
	for digits < len(head) && head[digits] >= '0' && head[digits] <= '9' {
		hour = hour*10 + int(head[digits]-'0')
		digits++
		if hour > 23 {
			return 0, false
		}
	}
	if digits == 0 || neg && hour != 0 {
		return 0, false
	}
	return hour, true
}

// HourlyHistogram counts calls per hour of day. Calls with an empty or
// unusable hora are skipped.
func HourlyHistogram(calls []models.Call) [24]int {
	var buckets [24]int
	for _, c := range calls {
		if c.Hora == "" {
			continue
		}
		if h, ok := HourOf(c.Hora); ok {
			buckets[h]++
		}
	}
	return buckets
}

// HourLabels are the histogram categories "0:00" through "23:00".
func HourLabels() []string {
	out := make([]string, 24)
	for i := range out {
		out[i] = fmt.Sprintf("%d:00", i)
	}
	return out
}

type PhoneCount struct {
	Telefono string `json:"telefono"`
	Count    int    `json:"count"`
}

// TopCalled groups calls by telefono and returns the n most frequent,
// highest first. Calls without a number are ignored.
func TopCalled(calls []models.Call, n int) []PhoneCount {
	idx := map[string]int{}
	var counts []PhoneCount
	for _, c := range calls {
		if c.Telefono == "" {
			continue
		}
		i, ok := idx[c.Telefono]
		if !ok {
			i = len(counts)
			idx[c.Telefono] = i
			counts = append(counts, PhoneCount{Telefono: c.Telefono})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	if counts == nil {
		counts = []PhoneCount{}
	}
	return counts
}

// UniquePhones lists the distinct non-empty telefono values in first-seen
// order.
func UniquePhones(calls []models.Call) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range calls {
		if c.Telefono == "" || seen[c.Telefono] {
			continue
		}
		seen[c.Telefono] = true
		out = append(out, c.Telefono)
	}
	return out
}

var receptorPattern = regexp.MustCompile(`Receptor: ([^()]+) \(`)

// ExtractContact pulls the receiver name out of a summary of the form
// "... Receptor: <name> (<phone>) ...". It returns "" when absent.
func ExtractContact(resumen string) string {
	m := receptorPattern.FindStringSubmatch(resumen)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// MergeEnrichment overlays analysis results onto calls by id. Calls with no
// matching result are returned unchanged.
func MergeEnrichment(calls []models.Call, results []models.Enrichment) []models.Call {
	byID := make(map[string]models.Enrichment, len(results))
	for _, r := range results {
		byID[r.ID.String()] = r
	}
	out := make([]models.Call, len(calls))
	for i, c := range calls {
		if r, ok := byID[c.Key()]; ok {
			if r.PalabrasClave != nil {
				c.PalabrasClave = r.PalabrasClave
			}
			if r.ResumenAutomatico != "" {
				c.ResumenAutomatico = r.ResumenAutomatico
			}
			if r.Emocion != "" {
				c.Emocion = r.Emocion
			}
			if r.Idioma != "" {
				c.Idioma = r.Idioma
			}
		}
		out[i] = c
	}
	return out
}

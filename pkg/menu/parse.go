package menu

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Day headers look like "Ponedeljek, 2.6." on the image. \p{L} rather
	// than \w so day names with carons (Četrtek) match.
	dayPattern = regexp.MustCompile(`^(\p{L}+),\s*(\d{1,2})\.(\d{1,2})`)
	// Dishes end with an allergen number list, e.g. "Korenčkova juha 1,9".
	allergenPattern = regexp.MustCompile(`\s*\d+(?:,\d+)*\s*$`)
)

// junkFragments are OCR misreads of the restaurant name that show up as
// standalone lines on the menu photo.
var junkFragments = []string{"vanderveg", "vanderueg", "uanderueg", "uanderveg"}

// Day is one day's offer: the soup comes first on the image, the main dish
// may wrap over several lines.
type Day struct {
	Name string
	Soup string
	Main string
}

// Week is the parsed menu in the order the days appear on the image.
type Week []Day

// Parse splits cleaned menu text into days. Lines before the first day
// header are discarded, as are restaurant-name artifacts, the allergen
// legend, and trailing allergen numbers on dish lines.
func Parse(cleaned string) Week {
	var week Week
	var buffer []string
	currentDay := ""

	flush := func() {
		if currentDay != "" && len(buffer) > 0 {
			day := Day{Name: currentDay, Soup: buffer[0]}
			if len(buffer) > 1 {
				main := strings.TrimSpace(strings.Join(buffer[1:], " "))
				day.Main = strings.ReplaceAll(main, " ,", ",")
			}
			week = append(week, day)
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isJunk(line) {
			continue
		}
		if m := dayPattern.FindStringSubmatch(line); m != nil {
			flush()
			currentDay = fmt.Sprintf("%s, %s. %s.", m[1], m[2], m[3])
			continue
		}
		if item := allergenPattern.ReplaceAllString(line, ""); item != "" {
			buffer = append(buffer, item)
		}
	}
	flush()
	return week
}

func isJunk(line string) bool {
	if strings.HasPrefix(line, "ALERGENI") {
		return true
	}
	low := strings.ToLower(line)
	for _, junk := range junkFragments {
		if strings.Contains(low, junk) {
			return true
		}
	}
	return false
}

package mockskema

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/mockskema/internal/rng"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

var (
	dateFrom = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

var (
	usernames  = []string{"john", "jane", "alex", "sam", "maria", "li", "omar", "emma"}
	domains    = []string{"example.com", "test.org", "mail.net", "demo.io", "sample.dev"}
	subdomains = []string{"www", "api", "mail", "app", "dev", "cdn"}
	urlPaths   = []string{"api", "users", "products", "docs", "v1/items"}
	areaCodes  = []string{"212", "206", "312", "415", "512", "617"}
	schemes    = []string{"http", "https"}
)

// formats maps a string format to its literal generator.
var formats = map[string]func(*rng.LCG) string{
	"email":     email,
	"date":      func(r *rng.LCG) string { return randomInstant(r).Format(time.DateOnly) },
	"date-time": func(r *rng.LCG) string { return randomInstant(r).Format(isoMillis) },
	"time":      clock,
	"uri":       url,
	"url":       url,
	"uuid":      uuidV4,
	"ipv4":      ipv4,
	"ipv6":      ipv6,
	"hostname":  hostname,
	"phone":     phone,
}

// SupportedFormats lists the string formats with dedicated generators.
func SupportedFormats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func email(r *rng.LCG) string {
	user := r.Pick(usernames)
	suffix := r.Intn(1000)
	return fmt.Sprintf("%s%d@%s", user, suffix, r.Pick(domains))
}

func randomInstant(r *rng.LCG) time.Time {
	span := dateTo.Sub(dateFrom)
	return dateFrom.Add(time.Duration(r.Float64() * float64(span)))
}

func clock(r *rng.LCG) string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Intn(24), r.Intn(60), r.Intn(60))
}

func url(r *rng.LCG) string {
	s := r.Pick(schemes) + "://" + r.Pick(domains)
	if r.Bool() {
		s += "/" + r.Pick(urlPaths)
	}
	return s
}

// uuidV4 feeds PRNG bytes to uuid, which stamps the version and variant bits.
func uuidV4(r *rng.LCG) string {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.Nil.String()
	}
	return u.String()
}

func ipv4(r *rng.LCG) string {
	return fmt.Sprintf("%d.%d.%d.%d", r.Intn(256), r.Intn(256), r.Intn(256), r.Intn(256))
}

func ipv6(r *rng.LCG) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", r.Intn(1<<16))
	}
	return strings.Join(groups, ":")
}

func hostname(r *rng.LCG) string {
	return r.Pick(subdomains) + "." + r.Pick(domains)
}

func phone(r *rng.LCG) string {
	return fmt.Sprintf("+1-%s-%03d-%04d", r.Pick(areaCodes), 200+r.Intn(800), r.Intn(10000))
}

// Package kitchen is the menu-level view of the restaurant: a bounded bag of
// courses with running statistics, CSV ingestion and the cuisine report.
package kitchen

import (
	"fmt"
	"io"
	"math"

	"github.com/dstockto/bistro/models"
	"github.com/rs/zerolog"
)

// DefaultCapacity is the number of courses a kitchen holds unless told
// otherwise.
const DefaultCapacity = 100

// Kitchen keeps the sum of prep times and the number of elaborate dishes up to
// date as courses are added and served.
type Kitchen struct {
	dishes         []models.Course
	capacity       int
	totalPrepTime  int
	countElaborate int
	log            zerolog.Logger
}

type Option func(*Kitchen)

// WithCapacity bounds the bag; values below one fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(k *Kitchen) {
		if n > 0 {
			k.capacity = n
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(k *Kitchen) {
		k.log = l
	}
}

func New(opts ...Option) *Kitchen {
	k := &Kitchen{capacity: DefaultCapacity, log: zerolog.Nop()}
	for _, o := range opts {
		o(k)
	}
	return k
}

func (k *Kitchen) Len() int {
	return len(k.dishes)
}

func (k *Kitchen) Capacity() int {
	return k.capacity
}

// Dishes returns the courses in the order they were added.
func (k *Kitchen) Dishes() []models.Course {
	return append([]models.Course(nil), k.dishes...)
}

// NewOrder adds c to the kitchen. It fails for nil courses and when the
// kitchen is full.
func (k *Kitchen) NewOrder(c models.Course) bool {
	if c == nil || len(k.dishes) >= k.capacity {
		return false
	}
	k.dishes = append(k.dishes, c)
	d := c.Base()
	k.totalPrepTime += d.PrepTime
	if d.IsElaborate() {
		k.countElaborate++
	}
	return true
}

// ServeDish removes c, matched by identity, from the kitchen.
func (k *Kitchen) ServeDish(c models.Course) bool {
	for i, have := range k.dishes {
		if have != c {
			continue
		}
		k.dishes = append(k.dishes[:i], k.dishes[i+1:]...)
		d := c.Base()
		k.totalPrepTime -= d.PrepTime
		if d.IsElaborate() {
			k.countElaborate--
		}
		return true
	}
	return false
}

func (k *Kitchen) PrepTimeSum() int {
	if len(k.dishes) == 0 {
		return 0
	}
	return k.totalPrepTime
}

// AvgPrepTime is the mean prep time rounded to the nearest minute.
func (k *Kitchen) AvgPrepTime() int {
	if len(k.dishes) == 0 {
		return 0
	}
	total := 0
	for _, c := range k.dishes {
		total += c.Base().PrepTime
	}
	return int(math.Round(float64(total) / float64(len(k.dishes))))
}

func (k *Kitchen) ElaborateDishCount() int {
	if len(k.dishes) == 0 {
		return 0
	}
	return k.countElaborate
}

// ElaboratePercentage is the share of elaborate dishes, rounded to two
// decimal places.
func (k *Kitchen) ElaboratePercentage() float64 {
	if len(k.dishes) == 0 || k.countElaborate == 0 {
		return 0
	}
	return math.Round(float64(k.countElaborate)/float64(len(k.dishes))*10000) / 100
}

func (k *Kitchen) TallyCuisine(cuisine models.Cuisine) int {
	count := 0
	for _, c := range k.dishes {
		if c.Base().Cuisine == cuisine {
			count++
		}
	}
	return count
}

// release serves every course match accepts and returns how many went.
func (k *Kitchen) release(match func(*models.Dish) bool) int {
	var out []models.Course
	for _, c := range k.dishes {
		if match(c.Base()) {
			out = append(out, c)
		}
	}
	for _, c := range out {
		k.ServeDish(c)
	}
	return len(out)
}

func (k *Kitchen) ReleaseDishesBelowPrepTime(prepTime int) int {
	n := k.release(func(d *models.Dish) bool { return d.PrepTime < prepTime })
	k.log.Debug().Int("below", prepTime).Int("released", n).Msg("released quick dishes")
	return n
}

func (k *Kitchen) ReleaseDishesOfCuisine(cuisine models.Cuisine) int {
	n := k.release(func(d *models.Dish) bool { return d.Cuisine == cuisine })
	k.log.Debug().Stringer("cuisine", cuisine).Int("released", n).Msg("released cuisine")
	return n
}

// DietaryAdjustment applies request to every course in the kitchen. Changing
// ingredients can change which dishes count as elaborate, so the running
// count is rebuilt afterwards.
func (k *Kitchen) DietaryAdjustment(request models.DietaryRequest) {
	k.countElaborate = 0
	for _, c := range k.dishes {
		c.DietaryAccommodations(request)
		if c.Base().IsElaborate() {
			k.countElaborate++
		}
	}
}

// DisplayMenu writes every course's display block, separated by blank lines.
func (k *Kitchen) DisplayMenu(w io.Writer) error {
	for i, c := range k.dishes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}

// Report writes the cuisine tally, average prep time and elaborate share.
func (k *Kitchen) Report(w io.Writer) error {
	for _, c := range models.Cuisines() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c, k.TallyCuisine(c)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nAVERAGE PREP TIME: %d\nELABORATE DISHES: %.2f%%\n", k.AvgPrepTime(), k.ElaboratePercentage())
	return err
}

package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"evodungeon/pkg/engine/world"
)

// GenerationReport summarises one evaluated generation
type GenerationReport struct {
	Generation int
	Best       int   // Highest score in the generation
	Worst      int   // Lowest score, before the worst grids were replaced
	Target     int   // Score the search is waiting for
	Scores     []int // Ranked scores, ascending
}

// Evolutionary generates dungeons with elitist truncation selection over a
// fixed-size population of grids
type Evolutionary struct {
	populationSize int
	lambda         int // Grids replaced by copies each generation

	maxRepairAttempts int // 0 means retry forever
	maxGenerations    int // 0 means evolve forever
	maxDoorAttempts   int // 0 means retry forever

	rng      Rand
	logger   *zap.Logger
	observer func(GenerationReport)

	population []*world.Grid
}

// Option configures an Evolutionary generator
type Option func(*Evolutionary)

// WithRand sets the random source used for every placement decision
func WithRand(r Rand) Option {
	return func(e *Evolutionary) {
		e.rng = r
	}
}

// WithSeed seeds a private math/rand source
func WithSeed(seed int64) Option {
	return func(e *Evolutionary) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPopulationSize sets how many grids are evolved side by side.
// Values below 2 are raised to 2 so selection always has a half to copy.
func WithPopulationSize(n int) Option {
	return func(e *Evolutionary) {
		e.populationSize = max(n, 2)
	}
}

// WithMaxRepairAttempts bounds the placement retries for one failed room
func WithMaxRepairAttempts(n int) Option {
	return func(e *Evolutionary) {
		e.maxRepairAttempts = max(n, 0)
	}
}

// WithMaxGenerations bounds the number of generations Generate runs
func WithMaxGenerations(n int) Option {
	return func(e *Evolutionary) {
		e.maxGenerations = max(n, 0)
	}
}

// WithMaxDoorAttempts bounds the retries AddDoor makes on occupied cells
func WithMaxDoorAttempts(n int) Option {
	return func(e *Evolutionary) {
		e.maxDoorAttempts = max(n, 0)
	}
}

// WithLogger sets the logger for generation progress
func WithLogger(l *zap.Logger) Option {
	return func(e *Evolutionary) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers a callback invoked after every generation
func WithObserver(fn func(GenerationReport)) Option {
	return func(e *Evolutionary) {
		e.observer = fn
	}
}

// NewEvolutionary creates a new evolutionary generator.
// Without options it uses a time-seeded source, ten grids and unbounded retries.
func NewEvolutionary(opts ...Option) *Evolutionary {
	e := &Evolutionary{
		populationSize: DefaultPopulationSize,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newTimeRand()
	}
	e.lambda = e.populationSize / 2
	return e
}

// Name returns the name of this generator
func (e *Evolutionary) Name() string {
	return "Evolutionary"
}

// PopulationSize returns the number of grids evolved per generation
func (e *Evolutionary) PopulationSize() int {
	return e.populationSize
}

// Generate evolves dungeons of the given dimension until one holds
// roomCount intact rooms, and returns it.
// Unless bounds were configured it does not return while no grid can reach
// the target, e.g. when rooms no longer fit.
func (e *Evolutionary) Generate(dimension, roomCount int) (*world.Grid, error) {
	if roomCount <= 0 {
		return nil, ErrInvalidRoomCount
	}
	if minimum := MinDimension(roomCount); dimension < minimum {
		return nil, &DimensionTooSmallError{Dimension: dimension, Minimum: minimum}
	}

	target := TargetScore(roomCount)
	e.initPopulation(dimension, roomCount)

	e.logger.Info("generation started",
		zap.Int("dimension", dimension),
		zap.Int("rooms", roomCount),
		zap.Int("population", e.populationSize),
		zap.Int("target", target))

	for generation := 1; ; generation++ {
		if err := e.evolve(); err != nil {
			return nil, fmt.Errorf("generation %d: %w", generation, err)
		}

		best := e.evaluate()
		worst := e.selectSurvivors()
		e.report(GenerationReport{
			Generation: generation,
			Best:       best.Score,
			Worst:      worst,
			Target:     target,
			Scores:     e.scores(),
		})

		if best.Score >= target {
			e.logger.Info("generation finished",
				zap.Int("generations", generation),
				zap.Int("score", best.Score))
			return best, nil
		}

		if e.maxGenerations > 0 && generation >= e.maxGenerations {
			return nil, fmt.Errorf("%w: best score %d of %d after %d generations",
				ErrGenerationLimit, best.Score, target, generation)
		}
	}
}

// initPopulation builds fresh grids and tries roomCount placements on each.
// Failed placements are not retried.
func (e *Evolutionary) initPopulation(dimension, roomCount int) {
	e.population = make([]*world.Grid, e.populationSize)
	for i := range e.population {
		g := world.NewGrid(dimension)
		for j := 0; j < roomCount; j++ {
			e.AddRoom(g)
		}
		e.population[i] = g
	}
}

// evolve strips and repairs every grid in the population
func (e *Evolutionary) evolve() error {
	for _, g := range e.population {
		strip(g)
		if err := e.repair(g); err != nil {
			return err
		}
	}
	return nil
}

// strip resets every mutable cell that is not already free space
func strip(g *world.Grid) {
	for _, cell := range g.Cells() {
		if !cell.Immune && cell.Type != world.FreeSpace {
			cell.Type = world.FreeSpace
		}
	}
}

// repair replaces each room that failed its last integrity check.
// Rooms placed here are checked in the next evaluation.
func (e *Evolutionary) repair(g *world.Grid) error {
	var failed []*world.Room
	for _, room := range g.Rooms() {
		if !room.Intact {
			failed = append(failed, room)
		}
	}

	for _, room := range failed {
		g.RemoveRoom(room)
		if err := e.placeRoom(g); err != nil {
			return err
		}
	}
	return nil
}

// placeRoom retries the placement heuristic until a room lands
func (e *Evolutionary) placeRoom(g *world.Grid) error {
	for attempt := 1; ; attempt++ {
		if e.AddRoom(g) {
			return nil
		}
		if e.maxRepairAttempts > 0 && attempt >= e.maxRepairAttempts {
			return &PlacementError{Dimension: g.Dimension(), Attempts: attempt}
		}
	}
}

// evaluate scores every grid and returns the first one with the highest score.
// Overlapping rooms are not counted twice.
func (e *Evolutionary) evaluate() *world.Grid {
	best := e.population[0]
	for _, g := range e.population {
		score := g.CheckRooms() * pointsPerRoom
		g.Score = score
		if score > best.Score {
			best = g
		}
	}
	return best
}

// selectSurvivors ranks the population by score and overwrites the lambda
// lowest grids with copies of the lambda highest. Equal scores keep their
// population order. It returns the lowest score before replacement.
func (e *Evolutionary) selectSurvivors() int {
	sort.SliceStable(e.population, func(i, j int) bool {
		return e.population[i].Compare(e.population[j]) < 0
	})
	worst := e.population[0].Score

	top := len(e.population) - e.lambda
	for i := 0; i < e.lambda; i++ {
		e.population[i] = e.population[top+i].Clone()
	}
	return worst
}

func (e *Evolutionary) scores() []int {
	scores := make([]int, len(e.population))
	for i, g := range e.population {
		scores[i] = g.Score
	}
	return scores
}

func (e *Evolutionary) report(r GenerationReport) {
	e.logger.Debug("generation evaluated",
		zap.Int("generation", r.Generation),
		zap.Int("best", r.Best),
		zap.Int("worst", r.Worst),
		zap.Int("target", r.Target))
	if e.observer != nil {
		e.observer(r)
	}
}

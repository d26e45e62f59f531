package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
	"time"
)

// Random is the subset of a PRNG the managers draw from.
type Random interface {
	Intn(n int) int
	Float64() float64
}

type FoodManager struct {
	grid         types.Grid
	cells        [][]bool // [y][x]
	count        int
	maxFood      int
	spawnDivisor float64
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, maxFood int, spawnDivisor float64, collisionMgr *CollisionManager) *FoodManager {
	cells := make([][]bool, grid.Height)
	for y := range cells {
		cells[y] = make([]bool, grid.Width)
	}
	return &FoodManager{
		grid:         grid,
		cells:        cells,
		maxFood:      maxFood,
		spawnDivisor: spawnDivisor,
		collisionMgr: collisionMgr,
	}
}

// Update runs the spawn policy for one tick. It returns the placed cell, if any.
func (fm *FoodManager) Update(rng Random, interval time.Duration, snake *entity.Snake) (types.Point, bool) {
	if fm.count == 0 {
		return fm.SpawnRandom(rng, snake)
	}
	if fm.count < fm.maxFood && rng.Float64() < fm.SpawnProbability(interval) {
		return fm.SpawnRandom(rng, snake)
	}
	return types.Point{}, false
}

// SpawnProbability is the per-tick chance of an extra food item. Slower
// ticks make extra food more likely.
func (fm *FoodManager) SpawnProbability(interval time.Duration) float64 {
	if fm.spawnDivisor <= 0 {
		return 0
	}
	return interval.Seconds() / fm.spawnDivisor
}

// SpawnRandom places one food item on a uniformly chosen free cell.
// A full board is not an error: nothing is placed.
func (fm *FoodManager) SpawnRandom(rng Random, snake *entity.Snake) (types.Point, bool) {
	candidates := fm.freeCells(snake)
	if len(candidates) == 0 {
		return types.Point{}, false
	}
	food := candidates[rng.Intn(len(candidates))]
	fm.Place(food)
	return food, true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	candidates := make([]types.Point, 0, max(fm.grid.Cells()-fm.count-snake.Len(), 0))
	for y, row := range fm.cells {
		for x, hasFood := range row {
			if hasFood {
				continue
			}
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

func (fm *FoodManager) Has(p types.Point) bool {
	if !fm.grid.Contains(p) {
		return false
	}
	return fm.cells[p.Y][p.X]
}

// Place marks p as food. Out-of-board or already set cells are ignored.
func (fm *FoodManager) Place(p types.Point) {
	if !fm.grid.Contains(p) || fm.cells[p.Y][p.X] {
		return
	}
	fm.cells[p.Y][p.X] = true
	fm.count++
}

// Remove clears p and reports whether there was food on it.
func (fm *FoodManager) Remove(p types.Point) bool {
	if !fm.Has(p) {
		return false
	}
	fm.cells[p.Y][p.X] = false
	fm.count--
	return true
}

func (fm *FoodManager) Count() int {
	return fm.count
}

// Cells returns the food cells in row-major order.
func (fm *FoodManager) Cells() []types.Point {
	food := make([]types.Point, 0, fm.count)
	for y, row := range fm.cells {
		for x, hasFood := range row {
			if hasFood {
				food = append(food, types.Point{X: x, Y: y})
			}
		}
	}
	return food
}

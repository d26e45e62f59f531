package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if a position is already part of the snake.
// The caller decides whether the tail has been released for this tick.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.Contains(pos)
}

// ValidateSpawnPosition checks if a position can receive food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return !cm.IsWallCollision(pos) && !snake.Contains(pos)
}

// CheckCollision runs the wall check and then the body check for pos.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(pos) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

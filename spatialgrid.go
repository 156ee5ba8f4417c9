package pebble

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrGridCapacity is returned by Insert when the grid already holds its
// maximum number of distinct cells. The grid cannot guarantee completeness
// past that point, so the step must be treated as failed by the caller.
var ErrGridCapacity = errors.New("spatial grid: cell capacity exhausted")

// DefaultMaxCells borne le nombre de cellules distinctes d'une grille.
const DefaultMaxCells = 1 << 20

// ============================================================================
// Types
// ============================================================================

// CellKey - Coordonnées d'une cellule dans l'espace 3D
type CellKey struct {
	X, Y, Z int
}

// cell - Conteneur d'indices de bodies, chaîné sur son slot de hachage.
// Des clés distinctes peuvent partager un slot; la clé exacte est conservée
// pour que les requêtes ne confondent jamais deux cellules.
type cell struct {
	key         CellKey
	bodyIndices []int
	next        *cell
}

// SpatialGrid - Grille spatiale uniforme avec hashing pour broad phase.
// Les buckets référencent les bodies par indice dans le slice possédant,
// jamais par pointeur: la grille ne possède rien et n'est valide que pour
// le pas de simulation qui l'a peuplée.
type SpatialGrid struct {
	cellSize float64
	slots    []*cell
	slotMask int

	cellCount int
	maxCells  int
}

// ============================================================================
// Constructeur
// ============================================================================

// NewSpatialGrid - Crée une nouvelle grille spatiale.
// numSlots is rounded up to a power of two; maxCells <= 0 selects
// DefaultMaxCells.
func NewSpatialGrid(cellSize float64, numSlots, maxCells int) *SpatialGrid {
	numSlots = nextPowerOfTwo(numSlots)
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}

	return &SpatialGrid{
		cellSize: cellSize,
		slots:    make([]*cell, numSlots),
		slotMask: numSlots - 1,
		maxCells: maxCells,
	}
}

// nextPowerOfTwo - Arrondit à la puissance de 2 supérieure
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - Insère un body (par indice) dans la cellule couvrant sa position.
// Cellule existante: ajout amorti O(1), le slice double en capacité via
// append. Nouvelle cellule: ErrGridCapacity si le budget de cellules est
// atteint.
func (sg *SpatialGrid) Insert(bodyIndex int, position mgl64.Vec3) error {
	key := sg.worldToCell(position)
	slot := sg.hashCell(key)

	for c := sg.slots[slot]; c != nil; c = c.next {
		if c.key == key {
			c.bodyIndices = append(c.bodyIndices, bodyIndex)
			return nil
		}
	}

	if sg.cellCount == sg.maxCells {
		return ErrGridCapacity
	}

	sg.slots[slot] = &cell{
		key:         key,
		bodyIndices: append(make([]int, 0, 4), bodyIndex),
		next:        sg.slots[slot],
	}
	sg.cellCount++

	return nil
}

// QueryCell - Retourne les indices occupant une cellule exacte, ou absent
func (sg *SpatialGrid) QueryCell(cx, cy, cz int) ([]int, bool) {
	key := CellKey{cx, cy, cz}

	for c := sg.slots[sg.hashCell(key)]; c != nil; c = c.next {
		if c.key == key {
			return c.bodyIndices, true
		}
	}

	return nil, false
}

// QueryNearby - Retourne les indices des autres bodies dans le bloc 3×3×3 de
// cellules centré sur position. Les paires distantes de plus d'une largeur de
// cellule ne sont jamais vues: approximation assumée pour des bodies plus
// petits que la cellule.
func (sg *SpatialGrid) QueryNearby(bodyIndex int, position mgl64.Vec3) []int {
	center := sg.worldToCell(position)
	result := make([]int, 0, 8)

	for x := center.X - 1; x <= center.X+1; x++ {
		for y := center.Y - 1; y <= center.Y+1; y++ {
			for z := center.Z - 1; z <= center.Z+1; z++ {
				indices, ok := sg.QueryCell(x, y, z)
				if !ok {
					continue
				}
				for _, idx := range indices {
					if idx != bodyIndex {
						result = append(result, idx)
					}
				}
			}
		}
	}

	return result
}

// Clear - Vide la grille, cellules comprises. Les bodies bougent à chaque
// pas: reconstruction intégrale, les cellules des positions quittées ne
// doivent pas s'accumuler contre le budget maxCells.
func (sg *SpatialGrid) Clear() {
	for slot := range sg.slots {
		sg.slots[slot] = nil
	}
	sg.cellCount = 0
}

// ForEachCell - Itère les cellules occupées (>= 1 body)
func (sg *SpatialGrid) ForEachCell(fn func(key CellKey, bodyIndices []int)) {
	for slot := range sg.slots {
		for c := sg.slots[slot]; c != nil; c = c.next {
			if len(c.bodyIndices) > 0 {
				fn(c.key, c.bodyIndices)
			}
		}
	}
}

// CellCount - Nombre de cellules distinctes déjà matérialisées
func (sg *SpatialGrid) CellCount() int {
	return sg.cellCount
}

// worldToCell - Convertit une position monde en coordonnées de cellule.
// Floor, pas troncature: (-0.5 / 1.0) tombe dans la cellule -1.
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - Hash une cellule vers un slot de la table
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.slotMask
}

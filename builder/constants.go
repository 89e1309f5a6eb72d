// Package builder defines shared constants used by the preset constructors,
// keeping defaults and selectable ranges in one place.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodBinaryTree is the canonical name for the BinaryTree constructor.
	MethodBinaryTree = "BinaryTree"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
)

//-----------------------------------------------------------------------------
// Defaults and selectable ranges
//-----------------------------------------------------------------------------

const (
	// DefaultGridSize is the grid side used when WithGridSize is not given.
	DefaultGridSize = 10
	// MinGridSize is the smallest buildable grid side.
	MinGridSize = 1
	// MinSelectableGridSize and MaxSelectableGridSize bound the sizes offered
	// by interactive pickers.
	MinSelectableGridSize = 5
	MaxSelectableGridSize = 10

	// DefaultTreeDepth is the tree depth used when WithTreeDepth is not given.
	DefaultTreeDepth = 3
	// MinTreeDepth is the smallest buildable depth (a lone root).
	MinTreeDepth = 0
	// MaxSelectableTreeDepth bounds the depths offered by interactive pickers.
	MaxSelectableTreeDepth = 5
)

//-----------------------------------------------------------------------------
// Geometry
//-----------------------------------------------------------------------------

const (
	// GridSpacing is the distance between neighboring grid vertices and the
	// offset of the first one from the origin.
	GridSpacing = 1.5
)

// GridSizes returns the selectable grid sides in ascending order.
func GridSizes() []int {
	out := make([]int, 0, MaxSelectableGridSize-MinSelectableGridSize+1)
	for s := MinSelectableGridSize; s <= MaxSelectableGridSize; s++ {
		out = append(out, s)
	}

	return out
}

// TreeDepths returns the selectable tree depths in ascending order.
func TreeDepths() []int {
	out := make([]int, 0, MaxSelectableTreeDepth-MinTreeDepth+1)
	for d := MinTreeDepth; d <= MaxSelectableTreeDepth; d++ {
		out = append(out, d)
	}

	return out
}

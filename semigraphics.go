package columnlayout

// Semigraphics used by the built-in primitives. Strings use \u escapes to keep
// the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsHeavyHorizontal      = "\u2501" // ━
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsHeavyVertical        = "\u2503" // ┃
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight    = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft     = "\u2513" // ┓
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsHeavyUpAndRight      = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft       = "\u251b" // ┛
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	BlockFull = "\u2588" // █

	// Left blocks, from one eighth to seven eighths of a cell.
	BlockLeftOneEighth     = "\u258f" // ▏
	BlockLeftOneQuarter    = "\u258e" // ▎
	BlockLeftThreeEighths  = "\u258d" // ▍
	BlockLeftHalf          = "\u258c" // ▌
	BlockLeftFiveEighths   = "\u258b" // ▋
	BlockLeftThreeQuarters = "\u258a" // ▊
	BlockLeftSevenEighths  = "\u2589" // ▉

	// Lower blocks, from one eighth to seven eighths of a cell.
	BlockLowerOneEighth     = "\u2581" // ▁
	BlockLowerOneQuarter    = "\u2582" // ▂
	BlockLowerThreeEighths  = "\u2583" // ▃
	BlockLowerHalf          = "\u2584" // ▄
	BlockLowerFiveEighths   = "\u2585" // ▅
	BlockLowerThreeQuarters = "\u2586" // ▆
	BlockLowerSevenEighths  = "\u2587" // ▇

	BlockUpperOneEighth = "\u2594" // ▔
	BlockUpperHalf      = "\u2580" // ▀
	BlockRightOneEighth = "\u2595" // ▕
	BlockRightHalf      = "\u2590" // ▐
)

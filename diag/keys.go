package diag

// Fatal diagnostics.
var (
	NoStart      = Key{FATAL, 1}
	AfterEnd     = Key{FATAL, 2}
	TooLarge     = Key{FATAL, 3}
	EndName      = Key{FATAL, 5}
	StartOperand = Key{FATAL, 6}
	StartLabel   = Key{FATAL, 7}
)

// Serious diagnostics.
var (
	LabelSyntax      = Key{SERIOUS, 1}
	LabelLength      = Key{SERIOUS, 2}
	BadFunction      = Key{SERIOUS, 3}
	LiteralRange     = Key{SERIOUS, 4}
	BadCategory      = Key{SERIOUS, 5}
	ResetBackward    = Key{SERIOUS, 8}
	OperandKind      = Key{SERIOUS, 9}
	ResetOperand     = Key{SERIOUS, 10}
	DumpOperand      = Key{SERIOUS, 11}
	HaltRange        = Key{SERIOUS, 12}
	ExtrnDefined     = Key{SERIOUS, 13}
	DatOperand       = Key{SERIOUS, 14}
	Malformed        = Key{SERIOUS, 15}
	OperandRequired  = Key{SERIOUS, 16}
	SoperRange       = Key{SERIOUS, 17}
	StarPosition     = Key{SERIOUS, 19}
	Undefined        = Key{SERIOUS, 20}
	EquOperand       = Key{SERIOUS, 21}
	TooManyOperators = Key{SERIOUS, 22}
	EquLabel         = Key{SERIOUS, 23}
	OperatorCount    = Key{SERIOUS, 24}
	ResetLabel       = Key{SERIOUS, 25}
	EquRange         = Key{SERIOUS, 26}
	ExprRange        = Key{SERIOUS, 27}
	OperandUsage     = Key{SERIOUS, 28}
	BadOperator      = Key{SERIOUS, 30}
	NoStar           = Key{SERIOUS, 31}
	EquUsage         = Key{SERIOUS, 32}
	AdcUsage         = Key{SERIOUS, 33}
	UndefinedOperand = Key{SERIOUS, 34}
	EntryUsage       = Key{SERIOUS, 35}
	EntryUndefined   = Key{SERIOUS, 36}
	OutsideModule    = Key{SERIOUS, 38}
	SecondStart      = Key{SERIOUS, 40}
	EquForward       = Key{SERIOUS, 42}
)

// Warnings.
var (
	Redefined    = Key{WARNING, 1}
	Trailing     = Key{WARNING, 2}
	NoOperand    = Key{WARNING, 3}
	LabelIgnored = Key{WARNING, 5}
	NoEnd        = Key{WARNING, 6}
	Truncated    = Key{WARNING, 8}
)

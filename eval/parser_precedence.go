package eval

const (
	lowestPrec = iota
	precTernary
	precEquality
	precComparison
	precSum
	precProduct
	precPower
	precPrefix
	precCall
)

var precedences = map[TokenType]int{
	tokenQuestion: precTernary,
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenLT:       precComparison,
	tokenLTE:      precComparison,
	tokenGT:       precComparison,
	tokenGTE:      precComparison,
	tokenAt:       precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
	tokenPercent:  precProduct,
	tokenPower:    precPower,
	tokenLParen:   precCall,
	tokenLBracket: precCall,
}

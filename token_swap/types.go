package tokenswap

import (
	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

// Enums.
type Rounding = shared.Rounding

const (
	RoundingUp   = shared.RoundingUp
	RoundingDown = shared.RoundingDown
)

type TradeDirection = shared.TradeDirection

const (
	TradeDirectionAtoB = shared.TradeDirectionAtoB
	TradeDirectionBtoA = shared.TradeDirectionBtoA
)

type CurveType = shared.CurveType

const (
	CurveTypeConstantProduct = shared.CurveTypeConstantProduct
	CurveTypeConstantPrice   = shared.CurveTypeConstantPrice
)

type Fees = fees.Fees

type SwapCurve = math.SwapCurve

const InitialPoolShareSupply = shared.InitialPoolShareSupply

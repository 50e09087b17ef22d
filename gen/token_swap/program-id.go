package tokenswap

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the token-swap program address.
var ProgramID = solanago.MustPublicKeyFromBase58("SwaPpA9LAaLfeLi3a68M4DjnLqgtticKg6CnyNwgAC8")

package controllers

var (
	ComparePasswords = comparePasswords
	GenerateJWT      = generateJWT
	HashPassword     = hashPassword
)

package config

var ParseAndValidateWithEnv = parseAndValidate

/*
Package config manages configuration parsing and validation for renamerc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Loads the optional .renamerc config file
- Validates configuration values (ignore patterns, paths)
- Supports multiple config formats through a parser registry

🔄 Flow:
1. Reads configuration from file (missing file means empty config)
2. Dispatches to a format-specific parser by extension
3. Validates configuration values
4. Command-line flags override anything loaded here

📝 Design Philosophy:
The config file is a convenience, not a requirement: renamerc is fully
operable from flags alone. Everything in Config therefore defaults to the
zero value, and Load never fails just because the file is absent.
*/
package config

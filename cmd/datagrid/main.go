package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/datagrid/bootstrap"
	"github.com/fulldump/datagrid/configuration"
)

var banner = `
 ____        _         ____      _     _ 
|  _ \  __ _| |_ __ _ / ___|_ __(_) __| |
| | | |/ _' | __/ _' | |  _| '__| |/ _' |
| |_| | (_| | || (_| | |_| | |  | | (_| |
|____/ \__,_|\__\__,_|\____|_|  |_|\__,_|
                          version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}

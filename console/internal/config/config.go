package config

import "github.com/zeromicro/go-zero/core/logx"

type Config struct {
	Columns int    `json:",default=8"`
	Rows    int    `json:",default=8"`
	Color   string `json:",default=on"`
	Scan    bool   `json:",optional"`
	Json    bool   `json:",optional"`
	Query   struct {
		Column int    `json:",default=3"`
		Row    int    `json:",default=5"`
		Token  string `json:",default=dark"`
	}
	Log logx.LogConf
}

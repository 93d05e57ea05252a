package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysUser{},
	// Shop
	&Product{},
	&Folder{},
	&ProductFolder{},
}

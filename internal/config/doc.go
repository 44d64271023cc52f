// Package config 加载 ip6ctl 的配置文件。
//
// 配置文件为 YAML 或 JSON，按扩展名识别格式，缺省字段使用 [Default] 的值：
//
//	output:
//	  format: json
//	log:
//	  level: debug
//	  file: /var/log/ip6ctl/ip6ctl.log
//	  rotation:
//	    max_size_mb: 10
//	generate:
//	  prefix: "2001:db8:1::/64"
//	  count: 4
//	plan:
//	  network: "2001:db8::/48"
//	  departments:
//	    engineering: 4
//	    sales: 2
package config

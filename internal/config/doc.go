// Package config loads vbind.yaml.
//
// The file is optional: every field has a default, and CLI flags override
// whatever the file sets.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 7070
//	  tick: 1s
//	metrics:
//	  enabled: true
//	  path: /metrics
//	  namespace: vbind
//	tracing:
//	  enabled: false
//	  name: vbind-preview
//	log:
//	  level: info
//	export:
//	  dir: snapshots
//	  s3:
//	    bucket: my-bucket
//	    region: eu-west-1
//	    prefix: vbind/
//	    endpoint: http://localhost:9000
//
// # Usage
//
//	cfg, err := config.LoadOptional(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Addr())
package config

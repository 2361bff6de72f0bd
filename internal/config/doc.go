// Package config provides configuration parsing for the tagkit CLI.
//
// The configuration is stored in tagkit.json in the working directory.
// Missing files yield the defaults; flags given on the command line
// override file values.
//
// # Configuration File Structure
//
//	{
//	  "indent": 4,
//	  "head": {
//	    "omitHTMX": false,
//	    "title": "Reports",
//	    "semantic": "sakura:dark",
//	    "styleSheets": ["/static/app.css"]
//	  },
//	  "serve": {
//	    "addr": "localhost:3000",
//	    "metricsPath": "/metrics"
//	  },
//	  "export": {
//	    "bucket": "reports",
//	    "prefix": "daily",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Serve.Addr)
package config

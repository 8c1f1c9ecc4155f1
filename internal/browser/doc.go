// Package browser implements a read-only terminal browser for a config file.
//
// Built on Bubble Tea, it shows the section list on the left and the
// entries of the highlighted section in a scrolling viewport on the right:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	return browser.Run(path, cfg)
package browser

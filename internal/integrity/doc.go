// Package integrity computes and checks the checksum sidecar of a saved
// config file.
//
// The config package stores checksum tokens without interpreting them. This
// package supplies the tokens (hex SHA-256 of the file bytes) and does the
// comparison:
//
//	sum, err := integrity.SaveConfig(cfg, path, integrity.SidecarPath(path, ""))
//
//	if err := integrity.Verify(path, integrity.SidecarPath(path, "")); errors.Is(err, integrity.ErrMismatch) {
//	    // file was modified outside of btconf
//	}
package integrity

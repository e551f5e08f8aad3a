/*
Command assetid derives, inspects and encodes shielded asset identifiers.

Usage:

	assetid command [flags]

The commands are:

	keygen [-seed hex]
	    print a spending key and its public address
	new -owner addr -name s [-metadata s]
	    derive an asset and print it as JSON, followed by
	    its 161-byte encoding in hex
	decode
	    read a hex-encoded asset from stdin, re-derive its
	    identifier and print it as JSON
	batch -f manifest.yaml [-o out.bin]
	    derive every asset named in a YAML manifest in parallel,
	    optionally writing the encoded list to a file
	list -f in.bin
	    print every asset in an encoded list

A list file starts with a varstr31 header naming the format,
followed by the varint31 count and the 161-byte assets.

A manifest looks like this:

	owner: 6f3a...          # default owner for every asset
	assets:
	  - name: gold
	    metadata: one troy ounce
	  - name: silver
	    owner: 91c0...      # overrides the default

Environment:

	ASSETID_WORKERS    batch derivation workers (default GOMAXPROCS)
	ASSETID_COLOR      highlight output on a terminal (default true)
	ASSETID_METRICS    print metrics to stderr on exit (default false)
	ASSETID_LOGFILE    write the log to this file, with rotation;
	                   otherwise the log is shown only on failure
	ASSETID_LOGSIZE    bytes per log file before rotation (default 5000000)
	ASSETID_LOGCOUNT   rotated log files to keep (default 9)
	ASSETID_TIMEOUT    give up on a batch after this duration, e.g. 30s
	                   (default 0, no limit)

# Examples

Derive an asset for a fresh key:

	addr=$(assetid keygen | awk '/address/ {print $3}')
	assetid new -owner $addr -name gold | tail -n 1 | assetid decode
*/
package main

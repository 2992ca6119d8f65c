package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
)

// WriteProfiles lists every profile with its rank and guideline URN.
func WriteProfiles(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tRANK\tFIELDS\tGUIDELINE")
	for _, p := range profile.All() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", p, p.Rank(), capability.MaskFor(p).Len(), p.URN())
	}
	return tw.Flush()
}

// WriteCapabilities lists the fields of profile p with the profile that
// introduces each of them.
func WriteCapabilities(w io.Writer, p profile.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tMODE\tSINCE")
	for _, f := range capability.Fields(p) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, f.Mode, f.Since)
	}
	return tw.Flush()
}

// WriteSkips reports values dropped during a build. Nothing is written when
// there are none.
func WriteSkips(w io.Writer, skips []capability.Skip) error {
	if len(skips) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%d value(s) not supported by %s were dropped:\n", len(skips), skips[0].Profile); err != nil {
		return err
	}
	for _, s := range skips {
		if _, err := fmt.Fprintf(w, "  %s\n", s.Field); err != nil {
			return err
		}
	}
	return nil
}

// Fit is the outcome of building one description with one profile.
type Fit struct {
	Profile profile.Profile
	Dropped int
	Err     error
}

// WriteFits tabulates how well a description fits each profile.
func WriteFits(w io.Writer, fits []Fit) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tDROPPED\tRESULT")
	for _, f := range fits {
		result := "ok"
		switch {
		case f.Err != nil:
			result = "ERROR: " + f.Err.Error()
		case f.Dropped > 0:
			result = "lossy"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", f.Profile, f.Dropped, result)
	}
	return tw.Flush()
}

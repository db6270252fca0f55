// Package labels keeps the committed polygons of one image and reads and writes
// them as an ImageLabels XML document.
//
// A label file looks like this:
//
//	<ImageLabels>
//	  <Label>
//	    <Name>roomba</Name>
//	    <Points>
//	      <Point><x>10</x><y>20</y></Point>
//	      <Point><x>30</x><y>20</y></Point>
//	      <Point><x>30</x><y>40</y></Point>
//	    </Points>
//	  </Label>
//	</ImageLabels>
//
// Name validation is a caller concern: CheckName applies the trimming, blank,
// character and uniqueness rules before Store.Insert or Store.Rename is called.
// The store itself only refuses blank and duplicate keys.
package labels

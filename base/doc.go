/*

Package base provides base functions for dynarray.

The base functions include:

* Random Generator

*/
package base
